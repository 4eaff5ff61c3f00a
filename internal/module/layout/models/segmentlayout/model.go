package segmentlayout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/models/discadelta"
	"layoutdss/internal/module/layout/models/discadelta/lp"
	"layoutdss/internal/module/layout/solve/dto"
)

// ModelName is the registry name of the segment layout model.
const ModelName = "segment_layout"

// fillEpsilon bounds the rounding drift tolerated before the solve result is
// flagged as overflowing or under-filling the root distance.
const fillEpsilon = 1e-6

// Model adapts the discadelta solver to the mbms.Model contract: input
// validation, execution metadata and the optional LP cross-check.
type Model struct {
	logger *zap.Logger
}

// NewModel creates the segment layout model.
func NewModel(logger *zap.Logger) *Model {
	return &Model{logger: logger}
}

// Name returns the registry name of the model.
func (m *Model) Name() string {
	return ModelName
}

// Description returns a short summary of what the model computes.
func (m *Model) Description() string {
	return "Partitions a root distance across an ordered segment strip with per-segment compression and expansion constraints"
}

// Validate checks a LayoutModelInput before execution. The solver itself
// saturates pathological values; validation only rejects inputs the solver
// has no defined answer for, such as an empty strip or non-finite numbers.
func (m *Model) Validate(ctx context.Context, input interface{}) error {
	in, ok := input.(*dto.LayoutModelInput)
	if !ok {
		return fmt.Errorf("expected *dto.LayoutModelInput, got %T", input)
	}

	if len(in.Segments) == 0 {
		return fmt.Errorf("at least one segment is required")
	}

	if !isFinite(in.RootDistance) {
		return fmt.Errorf("root_distance must be a finite number")
	}

	for i, seg := range in.Segments {
		for _, v := range []float64{seg.Base, seg.CompressRatio, seg.ExpandRatio, seg.Min, seg.Max} {
			if !isFinite(v) {
				return fmt.Errorf("segment %d (%s) contains a non-finite number", i, seg.Name)
			}
		}
	}

	return nil
}

// Execute solves the strip and assembles the API output. The solver never
// fails; only an input of the wrong type produces an error.
func (m *Model) Execute(ctx context.Context, input interface{}) (interface{}, error) {
	in, ok := input.(*dto.LayoutModelInput)
	if !ok {
		return nil, fmt.Errorf("expected *dto.LayoutModelInput, got %T", input)
	}

	start := time.Now()

	var solution discadelta.Solution
	var trace *discadelta.Trace
	if in.IncludeTrace {
		solution, trace = discadelta.SolveTraced(in.Segments, in.RootDistance)
	} else {
		solution = discadelta.Solve(in.Segments, in.RootDistance)
	}

	output := &dto.LayoutModelOutput{
		Segments:      solution.Segments,
		Regime:        solution.Regime,
		InputDistance: solution.InputDistance,
		AccumBase:     solution.AccumBase,
		SumDistance:   solution.SumDistance,
		Metadata: dto.OutputMetadata{
			ExecutionID:     uuid.New().String(),
			ComputationTime: time.Since(start).Milliseconds(),
			Passes:          solution.Passes,
		},
	}

	if trace != nil {
		output.Trace = trace.Passes
	}

	switch solution.Regime {
	case discadelta.RegimeCompress:
		if solution.SumDistance > solution.InputDistance+fillEpsilon {
			output.Warnings = append(output.Warnings,
				"overflow: minimum constraints exceed the root distance, sum_distance > input_distance")
		}
	case discadelta.RegimeExpand:
		if solution.SumDistance < solution.InputDistance-fillEpsilon {
			output.Warnings = append(output.Warnings,
				"underfill: no expandable segments, surplus left undistributed")
		}
	}

	if in.LPCheck {
		output.LPCheck = m.runLPCheck(in)
		if !output.LPCheck.Available {
			output.Warnings = append(output.Warnings, "lp_check unavailable: "+output.LPCheck.Message)
		}
	}

	m.logger.Debug("Segment layout model executed",
		zap.String("execution_id", output.Metadata.ExecutionID),
		zap.String("regime", string(output.Regime)),
		zap.Int("passes", output.Metadata.Passes),
		zap.Float64("sum_distance", output.SumDistance),
	)

	return output, nil
}

// runLPCheck runs the max-enforcing LP variant next to the faithful solve.
// The LP result is informational; it never replaces the solver output.
func (m *Model) runLPCheck(in *dto.LayoutModelInput) *dto.LPCheckResult {
	result, err := lp.SolveStrict(in.Segments, in.RootDistance)
	if err != nil {
		return &dto.LPCheckResult{Available: false, Message: err.Error()}
	}

	return &dto.LPCheckResult{
		Available: true,
		Solver:    result.SolverName,
		Distances: result.Distances,
		Objective: result.Objective,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
