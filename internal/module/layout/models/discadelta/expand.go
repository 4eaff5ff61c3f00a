package discadelta

import "math"

// expand distributes the surplus across segments in listed order in
// proportion to their expand ratio. Early zero-ratio segments leave the
// surplus intact for later segments; when every ratio is zero the surplus
// stays undistributed. Maxima are not enforced on this path. Returns the
// number of passes executed (always one, or zero when there is no surplus).
func (c *computeContext) expand(trace *Trace) int {
	surplus := math.Max(0, c.InputDistance-c.AccumBase)
	if surplus <= 0 {
		return 0
	}

	remainSurplus := surplus
	remainRatio := c.AccumExpandRatio

	for i := range c.Metrics {
		m := &c.Metrics[i]

		var delta float64
		if remainRatio > 0 && m.ExpandRatio > 0 {
			delta = remainSurplus / remainRatio * m.ExpandRatio
		}

		seg := &c.Segments[m.SegmentIndex]
		seg.ExpandDelta = delta
		seg.Distance += delta

		remainSurplus -= delta
		remainRatio -= m.ExpandRatio
	}

	trace.recordExpandPass(c, surplus)
	return 1
}
