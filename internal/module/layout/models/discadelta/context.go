package discadelta

import "math"

// segmentMetrics holds the validated per-segment quantities derived from one
// SegmentConfig. SegmentIndex points into the parallel Segments slice; the
// compression cascade hands metrics bundles between passes while results
// stay in place.
type segmentMetrics struct {
	SegmentIndex     int
	BaseDistance     float64
	CompressCapacity float64
	CompressSolidify float64
	ExpandRatio      float64
	Min              float64
	Max              float64
}

// computeContext is the per-call working state: validated segments, their
// metrics in listed order, and the aggregates both solver paths start from.
type computeContext struct {
	InputDistance    float64
	Segments         []Segment
	Metrics          []segmentMetrics
	AccumBase        float64
	AccumSolidify    float64
	AccumExpandRatio float64
}

// newComputeContext validates every config in listed order, derives the
// compression metrics and seeds each segment with its validated base.
func newComputeContext(configs []SegmentConfig, rootDistance float64) *computeContext {
	ctx := &computeContext{
		InputDistance: math.Max(0, rootDistance),
		Segments:      make([]Segment, 0, len(configs)),
		Metrics:       make([]segmentMetrics, 0, len(configs)),
	}

	for i, raw := range configs {
		cfg := ValidateConfig(raw)

		capacity := cfg.Base * cfg.CompressRatio
		solidify := math.Max(0, cfg.Base-capacity)

		ctx.Segments = append(ctx.Segments, Segment{
			Name:     cfg.Name,
			Base:     cfg.Base,
			Distance: cfg.Base,
		})
		ctx.Metrics = append(ctx.Metrics, segmentMetrics{
			SegmentIndex:     i,
			BaseDistance:     cfg.Base,
			CompressCapacity: capacity,
			CompressSolidify: solidify,
			ExpandRatio:      cfg.ExpandRatio,
			Min:              cfg.Min,
			Max:              cfg.Max,
		})

		ctx.AccumBase += cfg.Base
		ctx.AccumSolidify += solidify
		ctx.AccumExpandRatio += cfg.ExpandRatio
	}

	return ctx
}

// Compressing reports whether the strip prefers more space than the root
// provides. The exact-fit case solves through the expansion path as a no-op.
func (c *computeContext) Compressing() bool {
	return c.InputDistance < c.AccumBase
}
