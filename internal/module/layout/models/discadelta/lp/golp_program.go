//go:build cgo && golp
// +build cgo,golp

package lp

import (
	"errors"
	"math"

	"github.com/draffensperger/golp"
)

// golpProgram wraps the golp library (lp_solve). Constraints and bounds are
// collected first and the LP is built in Solve, matching how lp_solve wants
// its rows added.
type golpProgram struct {
	numVars     int
	objective   []float64
	constraints []golpConstraint
	lowerBounds []float64
	upperBounds []float64
}

type golpConstraint struct {
	coefficients []float64
	op           string
	rhs          float64
}

// newGolpProgram creates an LP with numVars columns.
func newGolpProgram(numVars int) (lpProgram, error) {
	lower := make([]float64, numVars)
	upper := make([]float64, numVars)
	for i := range upper {
		upper[i] = math.Inf(1)
	}

	return &golpProgram{
		numVars:     numVars,
		objective:   make([]float64, numVars),
		constraints: make([]golpConstraint, 0),
		lowerBounds: lower,
		upperBounds: upper,
	}, nil
}

func (p *golpProgram) Name() string {
	return "golp-lp_solve"
}

func (p *golpProgram) SetObjective(coefficients []float64) {
	p.objective = make([]float64, len(coefficients))
	copy(p.objective, coefficients)
}

func (p *golpProgram) AddConstraint(coefficients []float64, op string, rhs float64) error {
	if len(coefficients) != p.numVars {
		return errors.New("coefficient count must match number of variables")
	}
	if op != "<=" && op != ">=" && op != "=" {
		return errors.New("operator must be <=, >=, or =")
	}

	p.constraints = append(p.constraints, golpConstraint{
		coefficients: coefficients,
		op:           op,
		rhs:          rhs,
	})
	return nil
}

func (p *golpProgram) SetBounds(varIndex int, lower, upper float64) {
	p.lowerBounds[varIndex] = lower
	p.upperBounds[varIndex] = upper
}

func (p *golpProgram) Solve() ([]float64, float64, error) {
	model := golp.NewLP(0, p.numVars)
	if model == nil {
		return nil, 0, errors.New("failed to create LP model")
	}

	model.SetObjFn(p.objective)

	for _, con := range p.constraints {
		var conType golp.ConstraintType
		switch con.op {
		case "<=":
			conType = golp.LE
		case ">=":
			conType = golp.GE
		case "=":
			conType = golp.EQ
		}
		if err := model.AddConstraint(con.coefficients, conType, con.rhs); err != nil {
			return nil, 0, err
		}
	}

	for i := 0; i < p.numVars; i++ {
		upper := p.upperBounds[i]
		if math.IsInf(upper, 1) {
			upper = 1e30
		}
		model.SetBounds(i, p.lowerBounds[i], upper)
	}

	model.SetVerboseLevel(golp.NEUTRAL)

	switch model.Solve() {
	case golp.OPTIMAL:
	case golp.INFEASIBLE:
		return nil, 0, errors.New("LP model is infeasible")
	case golp.UNBOUNDED:
		return nil, 0, errors.New("LP model is unbounded")
	default:
		return nil, 0, errors.New("LP solver failed")
	}

	values := make([]float64, p.numVars)
	vars := model.Variables()
	for i := 0; i < p.numVars && i < len(vars); i++ {
		values[i] = vars[i]
	}

	return values, model.Objective(), nil
}
