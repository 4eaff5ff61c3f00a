package lp

import (
	"math"

	"layoutdss/internal/module/layout/models/discadelta"
)

// The strict variant solves the segment layout problem as a linear program
// that DOES enforce maxima, which the faithful solver deliberately omits
// during expansion. It is an opt-in cross-check, never a replacement.
//
// LP model, for n segments:
//
//	variables:  x_i (final distance), d-_i, d+_i (deviation from base)
//	minimize:   Σ (d-_i + d+_i)
//	subject to: x_i + d-_i - d+_i = base_i
//	            Σ x_i = clamp(input, Σ min_i, Σ max_i)
//	            min_i <= x_i <= max_i,  d-_i, d+_i >= 0

// Result is the solution of the strict LP variant.
type Result struct {
	Distances  []float64
	Objective  float64
	SolverName string
}

// lpProgram is the minimal LP surface SolveStrict needs. The one
// implementation wraps golp and exists only in cgo builds with the golp tag;
// other builds get a constructor that reports the solver as unavailable.
type lpProgram interface {
	SetObjective(coefficients []float64)
	AddConstraint(coefficients []float64, op string, rhs float64) error
	SetBounds(varIndex int, lower, upper float64)
	Solve() (values []float64, objective float64, err error)
	Name() string
}

// SolveStrict solves the max-enforcing variant of the layout problem.
func SolveStrict(configs []discadelta.SegmentConfig, rootDistance float64) (*Result, error) {
	n := len(configs)
	if n == 0 {
		return &Result{}, nil
	}

	validated := make([]discadelta.SegmentConfig, n)
	var sumMin, sumMax float64
	for i, cfg := range configs {
		validated[i] = discadelta.ValidateConfig(cfg)
		sumMin += validated[i].Min
		sumMax += validated[i].Max
	}

	input := math.Max(0, rootDistance)
	target := input
	if target < sumMin {
		target = sumMin
	}
	if target > sumMax {
		target = sumMax
	}

	// Variable layout: [0..n) final distances, [n..2n) under-deviations,
	// [2n..3n) over-deviations.
	program, err := newGolpProgram(3 * n)
	if err != nil {
		return nil, err
	}

	objective := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		objective[n+i] = 1
		objective[2*n+i] = 1
	}
	program.SetObjective(objective)

	for i, cfg := range validated {
		program.SetBounds(i, cfg.Min, cfg.Max)
		program.SetBounds(n+i, 0, math.Inf(1))
		program.SetBounds(2*n+i, 0, math.Inf(1))

		row := make([]float64, 3*n)
		row[i] = 1
		row[n+i] = 1
		row[2*n+i] = -1
		if err := program.AddConstraint(row, "=", cfg.Base); err != nil {
			return nil, err
		}
	}

	fill := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		fill[i] = 1
	}
	if err := program.AddConstraint(fill, "=", target); err != nil {
		return nil, err
	}

	values, objectiveValue, err := program.Solve()
	if err != nil {
		return nil, err
	}

	return &Result{
		Distances:  values[:n],
		Objective:  objectiveValue,
		SolverName: program.Name(),
	}, nil
}
