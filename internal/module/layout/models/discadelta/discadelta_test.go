package discadelta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestSolve_ExpansionWithSurplus(t *testing.T) {
	// Surplus 200 split 1:3 across two segments.
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 0.5, ExpandRatio: 1, Min: 0, Max: 500},
		{Name: "S2", Base: 100, CompressRatio: 0.5, ExpandRatio: 3, Min: 0, Max: 500},
	}

	sol := Solve(configs, 400)

	require.Len(t, sol.Segments, 2)
	assert.Equal(t, RegimeExpand, sol.Regime)

	assert.InDelta(t, 100, sol.Segments[0].Base, tolerance)
	assert.InDelta(t, 50, sol.Segments[0].ExpandDelta, tolerance)
	assert.InDelta(t, 150, sol.Segments[0].Distance, tolerance)

	assert.InDelta(t, 100, sol.Segments[1].Base, tolerance)
	assert.InDelta(t, 150, sol.Segments[1].ExpandDelta, tolerance)
	assert.InDelta(t, 250, sol.Segments[1].Distance, tolerance)

	assert.InDelta(t, 400, sol.SumDistance, tolerance)
}

func TestSolve_ExactFit(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 0.5, ExpandRatio: 1, Min: 0, Max: 500},
		{Name: "S2", Base: 100, CompressRatio: 0.5, ExpandRatio: 3, Min: 0, Max: 500},
	}

	sol := Solve(configs, 200)

	assert.Equal(t, RegimeExpand, sol.Regime)
	assert.Equal(t, 0, sol.Passes)
	for _, seg := range sol.Segments {
		assert.InDelta(t, 100, seg.Base, tolerance)
		assert.InDelta(t, 0, seg.ExpandDelta, tolerance)
		assert.InDelta(t, 100, seg.Distance, tolerance)
	}
}

func TestSolve_SimpleCompression(t *testing.T) {
	// Shortfall 80 over two fully compressible segments with equal capacity.
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 1.0, ExpandRatio: 0, Min: 0, Max: 100},
		{Name: "S2", Base: 100, CompressRatio: 1.0, ExpandRatio: 0, Min: 0, Max: 100},
	}

	sol := Solve(configs, 120)

	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.Equal(t, 1, sol.Passes)
	for _, seg := range sol.Segments {
		assert.InDelta(t, 60, seg.Base, tolerance)
		assert.InDelta(t, 0, seg.ExpandDelta, tolerance)
		assert.InDelta(t, 60, seg.Distance, tolerance)
	}
	assert.InDelta(t, 120, sol.SumDistance, tolerance)
}

func TestSolve_CompressionClampTriggersResolve(t *testing.T) {
	// A naive split gives 60 each; S1 clamps to its minimum of 80 and leaves
	// the pool, S2 re-solves against the remaining 40 alone.
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 1.0, ExpandRatio: 0, Min: 80, Max: 100},
		{Name: "S2", Base: 100, CompressRatio: 1.0, ExpandRatio: 0, Min: 0, Max: 100},
	}

	sol := Solve(configs, 120)

	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.Equal(t, 2, sol.Passes)

	assert.InDelta(t, 80, sol.Segments[0].Distance, tolerance)
	assert.InDelta(t, 40, sol.Segments[1].Distance, tolerance)
	assert.InDelta(t, 120, sol.SumDistance, tolerance)
}

func TestSolve_PartialCompressibility(t *testing.T) {
	// S2 is fully solidified; only S1 can donate.
	configs := []SegmentConfig{
		{Name: "S1", Base: 200, CompressRatio: 0.5, ExpandRatio: 0, Min: 0, Max: 500},
		{Name: "S2", Base: 200, CompressRatio: 0.0, ExpandRatio: 0, Min: 0, Max: 500},
	}

	sol := Solve(configs, 300)

	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.InDelta(t, 100, sol.Segments[0].Distance, tolerance)
	assert.InDelta(t, 200, sol.Segments[1].Distance, tolerance)
	assert.InDelta(t, 300, sol.SumDistance, tolerance)
}

func TestSolve_ZeroExpandRatiosLeaveSurplusUndistributed(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 1.0, ExpandRatio: 0, Min: 0, Max: 500},
		{Name: "S2", Base: 150, CompressRatio: 1.0, ExpandRatio: 0, Min: 0, Max: 500},
	}

	sol := Solve(configs, 1000)

	assert.Equal(t, RegimeExpand, sol.Regime)
	for i, base := range []float64{100, 150} {
		assert.InDelta(t, base, sol.Segments[i].Base, tolerance)
		assert.InDelta(t, 0, sol.Segments[i].ExpandDelta, tolerance)
		assert.InDelta(t, base, sol.Segments[i].Distance, tolerance)
	}
	assert.InDelta(t, 250, sol.SumDistance, tolerance)
	assert.Less(t, sol.SumDistance, sol.InputDistance)
}

func TestSolve_InfeasibleMinimumsOverflow(t *testing.T) {
	// Minimum sum 300 against a root of 100: minima win and the sum
	// overflows the input. Accepted, not an error.
	configs := []SegmentConfig{
		{Name: "S1", Base: 200, CompressRatio: 1.0, ExpandRatio: 0, Min: 100, Max: 400},
		{Name: "S2", Base: 300, CompressRatio: 1.0, ExpandRatio: 0, Min: 200, Max: 400},
	}

	sol := Solve(configs, 100)

	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.GreaterOrEqual(t, sol.Segments[0].Distance, 100.0)
	assert.GreaterOrEqual(t, sol.Segments[1].Distance, 200.0)
	assert.Greater(t, sol.SumDistance, sol.InputDistance)
}

func TestSolve_EngineDemoStrip(t *testing.T) {
	// The four-segment strip from the engine's debug trace. S2 clamps to its
	// 300 minimum on the first pass, S3 has no capacity; S1 and S4 re-solve
	// against the remaining 350.
	configs := []SegmentConfig{
		{Name: "1", Base: 200, CompressRatio: 0.7, ExpandRatio: 0.1, Min: 0, Max: 100},
		{Name: "2", Base: 200, CompressRatio: 1.0, ExpandRatio: 1.0, Min: 300, Max: 800},
		{Name: "3", Base: 150, CompressRatio: 0.0, ExpandRatio: 2.0, Min: 0, Max: 200},
		{Name: "4", Base: 350, CompressRatio: 0.3, ExpandRatio: 0.5, Min: 50, Max: 300},
	}

	sol := Solve(configs, 800)

	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.Equal(t, 2, sol.Passes)

	assert.InDelta(t, 78.125, sol.Segments[0].Distance, 1e-6)
	assert.InDelta(t, 300, sol.Segments[1].Distance, 1e-6)
	assert.InDelta(t, 150, sol.Segments[2].Distance, 1e-6)
	assert.InDelta(t, 271.875, sol.Segments[3].Distance, 1e-6)
	assert.InDelta(t, 800, sol.SumDistance, 1e-6)
}

func TestSolve_NegativeRootDistanceSaturates(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 1.0, ExpandRatio: 1, Min: 0, Max: 100},
	}

	sol := Solve(configs, -50)

	assert.InDelta(t, 0, sol.InputDistance, tolerance)
	assert.Equal(t, RegimeCompress, sol.Regime)
	assert.InDelta(t, 0, sol.Segments[0].Distance, tolerance)
}

func TestSolve_EmptyStrip(t *testing.T) {
	sol := Solve(nil, 400)

	assert.Empty(t, sol.Segments)
	assert.Equal(t, RegimeExpand, sol.Regime)
	assert.InDelta(t, 0, sol.SumDistance, tolerance)
}

func TestSolve_OrderPreserved(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "left", Base: 100, ExpandRatio: 1, Max: 500},
		{Name: "center", Base: 100, ExpandRatio: 1, Max: 500},
		{Name: "right", Base: 100, ExpandRatio: 1, Max: 500},
	}

	sol := Solve(configs, 600)

	require.Len(t, sol.Segments, 3)
	assert.Equal(t, "left", sol.Segments[0].Name)
	assert.Equal(t, "center", sol.Segments[1].Name)
	assert.Equal(t, "right", sol.Segments[2].Name)
}

func TestSolveTraced_RecordsPasses(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, CompressRatio: 1.0, Min: 80, Max: 100},
		{Name: "S2", Base: 100, CompressRatio: 1.0, Min: 0, Max: 100},
	}

	sol, trace := SolveTraced(configs, 120)

	require.NotNil(t, trace)
	require.Len(t, trace.Passes, sol.Passes)

	first := trace.Passes[0]
	assert.Equal(t, RegimeCompress, first.Regime)
	assert.Equal(t, 2, first.ActiveCount)
	assert.Equal(t, []string{"S1"}, first.FixedNames)

	second := trace.Passes[1]
	assert.Equal(t, 1, second.ActiveCount)
	assert.Empty(t, second.FixedNames)

	// Tracing must not change the result.
	plain := Solve(configs, 120)
	for i := range plain.Segments {
		assert.InDelta(t, plain.Segments[i].Distance, sol.Segments[i].Distance, tolerance)
	}
}

func TestSolveTraced_ExpansionSinglePass(t *testing.T) {
	configs := []SegmentConfig{
		{Name: "S1", Base: 100, ExpandRatio: 1, Max: 500},
		{Name: "S2", Base: 100, ExpandRatio: 3, Max: 500},
	}

	sol, trace := SolveTraced(configs, 400)

	assert.Equal(t, 1, sol.Passes)
	require.Len(t, trace.Passes, 1)
	assert.Equal(t, RegimeExpand, trace.Passes[0].Regime)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name string
		in   SegmentConfig
		want SegmentConfig
	}{
		{
			name: "negative min saturates to zero",
			in:   SegmentConfig{Name: "a", Base: 50, CompressRatio: 0.5, ExpandRatio: 1, Min: -10, Max: 100},
			want: SegmentConfig{Name: "a", Base: 50, CompressRatio: 0.5, ExpandRatio: 1, Min: 0, Max: 100},
		},
		{
			name: "max below min is raised to min",
			in:   SegmentConfig{Name: "b", Base: 50, Min: 80, Max: 20},
			want: SegmentConfig{Name: "b", Base: 80, Min: 80, Max: 80},
		},
		{
			name: "base clamped into bounds",
			in:   SegmentConfig{Name: "c", Base: 500, Min: 10, Max: 100},
			want: SegmentConfig{Name: "c", Base: 100, Min: 10, Max: 100},
		},
		{
			name: "negative ratios saturate to zero",
			in:   SegmentConfig{Name: "d", Base: 50, CompressRatio: -0.5, ExpandRatio: -2, Max: 100},
			want: SegmentConfig{Name: "d", Base: 50, CompressRatio: 0, ExpandRatio: 0, Max: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateConfig(tt.in))
		})
	}
}
