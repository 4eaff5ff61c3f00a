package discadelta

// compress distributes the compression shortfall across the donor pool in
// listed order. A segment whose share falls below its minimum is clamped up,
// which consumes deterministic space: the pass is then repeated over the
// remaining donors against the reduced distance until no clamp fires. Each
// re-solve removes at least one segment, so the pass count is bounded by the
// segment count. Returns the number of passes executed.
func (c *computeContext) compress(trace *Trace) int {
	active := make([]segmentMetrics, len(c.Metrics))
	copy(active, c.Metrics)
	input := c.InputDistance

	passes := 0
	for len(active) > 0 {
		passes++

		var accumBase, accumSolidify float64
		for _, m := range active {
			accumBase += m.BaseDistance
			accumSolidify += m.CompressSolidify
		}

		remainDistance := input
		remainBase := accumBase
		remainSolidify := accumSolidify

		clamped := make([]bool, len(active))
		anyClamped := false

		for i, m := range active {
			shareSpace := remainDistance - remainSolidify
			shareCapacity := remainBase - remainSolidify

			raw := m.CompressSolidify
			if shareSpace > 0 && shareCapacity > 0 && m.CompressCapacity > 0 {
				raw = shareSpace/shareCapacity*m.CompressCapacity + m.CompressSolidify
			}

			final := raw
			if final < m.Min {
				// Strict upward clamp only; an exact tie keeps the segment
				// in the donor pool.
				final = m.Min
				clamped[i] = true
				anyClamped = true
			}

			seg := &c.Segments[m.SegmentIndex]
			seg.Base = final
			seg.ExpandDelta = 0
			seg.Distance = final

			remainDistance -= final
			remainSolidify -= m.CompressSolidify
			remainBase -= m.BaseDistance
		}

		if !anyClamped {
			trace.recordCompressPass(c, active, nil, input)
			return passes
		}

		// Clamped segments hold their minimum from here on. Zero-capacity
		// segments cannot donate either, so both leave the pool and their
		// final distances come off the distance the next pass solves for.
		next := make([]segmentMetrics, 0, len(active))
		var fixed []string
		nextInput := input
		for i, m := range active {
			if clamped[i] || m.CompressCapacity <= 0 {
				nextInput -= c.Segments[m.SegmentIndex].Distance
				fixed = append(fixed, c.Segments[m.SegmentIndex].Name)
			} else {
				next = append(next, m)
			}
		}

		trace.recordCompressPass(c, active, fixed, input)
		active = next
		input = nextInput
	}

	return passes
}
