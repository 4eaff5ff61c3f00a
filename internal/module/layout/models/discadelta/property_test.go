package discadelta

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pseudo-property tests: a fixed seed keeps the cases reproducible while
// still sweeping a wide range of strips, including degenerate ratios and
// infeasible minimums.

func randomStrip(r *rand.Rand) ([]SegmentConfig, float64) {
	n := 1 + r.Intn(8)
	configs := make([]SegmentConfig, 0, n)

	for i := 0; i < n; i++ {
		cfg := SegmentConfig{
			Name:          string(rune('a' + i)),
			Base:          r.Float64()*500 - 20,
			CompressRatio: r.Float64()*1.4 - 0.2,
			ExpandRatio:   r.Float64() * 5,
			Min:           r.Float64()*300 - 50,
			Max:           r.Float64() * 600,
		}
		// Sprinkle exact zeros, they are the interesting degenerate cases.
		if r.Intn(4) == 0 {
			cfg.ExpandRatio = 0
		}
		if r.Intn(4) == 0 {
			cfg.CompressRatio = 0
		}
		configs = append(configs, cfg)
	}

	rootDistance := r.Float64()*2500 - 100
	return configs, rootDistance
}

// validatedAggregates sums the quantities the feasibility gates need:
// sumFloor is the lowest total a compression can reach, since no segment
// drops below max(solidify, min).
func validatedAggregates(configs []SegmentConfig) (sumFloor, accumBase, accumExpand float64) {
	for _, raw := range configs {
		cfg := ValidateConfig(raw)
		solidify := math.Max(0, cfg.Base-cfg.Base*cfg.CompressRatio)
		sumFloor += math.Max(solidify, cfg.Min)
		accumBase += cfg.Base
		accumExpand += cfg.ExpandRatio
	}
	return
}

func TestProperty_DistanceIsBasePlusDelta(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 500; trial++ {
		configs, root := randomStrip(r)
		sol := Solve(configs, root)

		for _, seg := range sol.Segments {
			assert.InDelta(t, seg.Base+seg.ExpandDelta, seg.Distance, 1e-6)
		}
	}
}

func TestProperty_RegimesTouchDisjointFields(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for trial := 0; trial < 500; trial++ {
		configs, root := randomStrip(r)
		sol := Solve(configs, root)

		for i, seg := range sol.Segments {
			validated := ValidateConfig(configs[i])
			switch sol.Regime {
			case RegimeExpand:
				assert.InDelta(t, validated.Base, seg.Base, 1e-9)
				assert.GreaterOrEqual(t, seg.ExpandDelta, 0.0)
			case RegimeCompress:
				assert.Zero(t, seg.ExpandDelta)
				assert.GreaterOrEqual(t, seg.Distance, validated.Min-1e-9)
			}
		}
	}
}

func TestProperty_FeasibleStripsFillExactly(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	checked := 0
	for trial := 0; trial < 1000; trial++ {
		configs, root := randomStrip(r)
		sumFloor, accumBase, accumExpand := validatedAggregates(configs)

		input := math.Max(0, root)
		feasible := false
		if input < accumBase {
			feasible = sumFloor <= input
		} else {
			feasible = accumExpand > 0 || input == accumBase
		}
		if !feasible {
			continue
		}
		checked++

		sol := Solve(configs, root)
		tol := float64(len(configs)+1) * 1e-6
		assert.InDelta(t, input, sol.SumDistance, tol,
			"trial %d: strip should fill the input exactly", trial)
	}

	// The sweep must actually exercise the property.
	require.Greater(t, checked, 100)
}

func TestProperty_MonotoneInRootDistance(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	for trial := 0; trial < 500; trial++ {
		configs, root := randomStrip(r)
		delta := r.Float64() * 400

		before := Solve(configs, root)
		after := Solve(configs, root+delta)

		for i := range before.Segments {
			assert.GreaterOrEqual(t, after.Segments[i].Distance, before.Segments[i].Distance-1e-6,
				"trial %d segment %d shrank when the root grew", trial, i)
		}
	}
}

func TestProperty_EqualWeightsPermutationInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for trial := 0; trial < 300; trial++ {
		configs, root := randomStrip(r)
		for i := range configs {
			configs[i].ExpandRatio = 2
		}

		perm := r.Perm(len(configs))
		permuted := make([]SegmentConfig, len(configs))
		for i, p := range perm {
			permuted[i] = configs[p]
		}

		direct := Solve(configs, root)
		shuffled := Solve(permuted, root)

		for i, p := range perm {
			assert.InDelta(t, direct.Segments[p].Distance, shuffled.Segments[i].Distance, 1e-6,
				"trial %d: permuted solve diverged", trial)
		}
	}
}

func TestProperty_ValidationIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	for trial := 0; trial < 500; trial++ {
		configs, _ := randomStrip(r)
		for _, cfg := range configs {
			once := ValidateConfig(cfg)
			twice := ValidateConfig(once)
			assert.Equal(t, once, twice)
		}
	}
}

func TestProperty_CompressionNeverBelowSolidifyWithoutMin(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		configs, root := randomStrip(r)
		for i := range configs {
			configs[i].Min = 0
		}

		sol := Solve(configs, root)
		if sol.Regime != RegimeCompress {
			continue
		}

		for i, seg := range sol.Segments {
			cfg := ValidateConfig(configs[i])
			solidify := math.Max(0, cfg.Base-cfg.Base*cfg.CompressRatio)
			assert.GreaterOrEqual(t, seg.Distance, solidify-1e-6,
				"trial %d: segment compressed past its solidified floor", trial)
		}
	}
}
