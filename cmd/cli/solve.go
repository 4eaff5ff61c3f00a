package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"layoutdss/internal/module/layout/models/discadelta"

	"github.com/spf13/cobra"
)

var (
	solveDistance float64
	solveFile     string
	solveTrace    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a segment strip and print the result table",
	Long: `Solve a segment strip with the Discadelta solver and print a metrics and
distribution table. Without --file the built-in four-segment demo strip is
used; --distance overrides the root distance.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSolve()
	},
}

func init() {
	solveCmd.Flags().Float64Var(&solveDistance, "distance", 0, "root distance to solve against (0 = strip default)")
	solveCmd.Flags().StringVar(&solveFile, "file", "", "JSON file with {root_distance, segments}")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "print every solver pass")
	rootCmd.AddCommand(solveCmd)
}

// solveInput matches the ad-hoc request shape of the API
type solveInput struct {
	RootDistance float64                    `json:"root_distance"`
	Segments     []discadelta.SegmentConfig `json:"segments"`
}

func runSolve() {
	input := demoStrip()

	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			log.Fatalf("Failed to read strip file: %v", err)
		}
		if err := json.Unmarshal(data, &input); err != nil {
			log.Fatalf("Failed to parse strip file: %v", err)
		}
	}

	if solveDistance > 0 {
		input.RootDistance = solveDistance
	}

	solution, trace := discadelta.SolveTraced(input.Segments, input.RootDistance)

	if solveTrace {
		printTrace(trace)
	}

	printSolution(input, solution)
}

func demoStrip() solveInput {
	return solveInput{
		RootDistance: 800,
		Segments: []discadelta.SegmentConfig{
			{Name: "1", Base: 200, CompressRatio: 0.7, ExpandRatio: 0.1, Min: 0, Max: 100},
			{Name: "2", Base: 200, CompressRatio: 1.0, ExpandRatio: 1.0, Min: 300, Max: 800},
			{Name: "3", Base: 150, CompressRatio: 0.0, ExpandRatio: 2.0, Min: 0, Max: 200},
			{Name: "4", Base: 350, CompressRatio: 0.3, ExpandRatio: 0.5, Min: 50, Max: 300},
		},
	}
}

func printTrace(trace *discadelta.Trace) {
	for _, pass := range trace.Passes {
		fmt.Printf("pass %d (%s): active=%d input=%.4f", pass.Pass, pass.Regime, pass.ActiveCount, pass.InputDistance)
		if len(pass.FixedNames) > 0 {
			fmt.Printf(" fixed=%v", pass.FixedNames)
		}
		fmt.Println()
	}
	fmt.Println()
}

func printSolution(input solveInput, solution discadelta.Solution) {
	line := func() { fmt.Println(strings.Repeat("-", 110)) }

	fmt.Println()
	fmt.Println("=== Discadelta Segment Layout ===")
	fmt.Printf("Root distance: %.4f (%s, %d passes)\n\n", solution.InputDistance, solution.Regime, solution.Passes)

	line()
	fmt.Printf("| %-10s | %18s | %18s | %14s | %14s | %16s |\n",
		"Segment", "Compress Solidify", "Compress Capacity", "Base Distance", "Expand Delta", "Scaled Distance")
	line()

	for i, seg := range solution.Segments {
		validated := discadelta.ValidateConfig(input.Segments[i])
		capacity := validated.Base * validated.CompressRatio
		solidify := math.Max(0, validated.Base-capacity)

		fmt.Printf("| %-10s | %18.4f | %18.4f | %14.4f | %14.4f | %16.4f |\n",
			seg.Name, solidify, capacity, seg.Base, seg.ExpandDelta, seg.Distance)
	}

	line()
	fmt.Printf("Total: %.4f (expected %.4f)\n", solution.SumDistance, solution.InputDistance)
}
