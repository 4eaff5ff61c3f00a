package discadelta

// PassSnapshot captures the state of the strip after one solver pass. The
// websocket stream and the CLI's --trace output render these; the solver itself
// never reads them back.
type PassSnapshot struct {
	Regime        Regime    `json:"regime"`
	Pass          int       `json:"pass"`
	InputDistance float64   `json:"input_distance"`
	ActiveCount   int       `json:"active_count"`
	FixedNames    []string  `json:"fixed_names,omitempty"`
	Segments      []Segment `json:"segments"`
}

// Trace accumulates pass snapshots for one solve call. A nil Trace is valid
// and records nothing.
type Trace struct {
	Passes []PassSnapshot
}

func (t *Trace) recordCompressPass(c *computeContext, active []segmentMetrics, fixed []string, input float64) {
	if t == nil {
		return
	}
	t.Passes = append(t.Passes, PassSnapshot{
		Regime:        RegimeCompress,
		Pass:          len(t.Passes) + 1,
		InputDistance: input,
		ActiveCount:   len(active),
		FixedNames:    fixed,
		Segments:      snapshotSegments(c.Segments),
	})
}

func (t *Trace) recordExpandPass(c *computeContext, surplus float64) {
	if t == nil {
		return
	}
	t.Passes = append(t.Passes, PassSnapshot{
		Regime:        RegimeExpand,
		Pass:          len(t.Passes) + 1,
		InputDistance: surplus,
		ActiveCount:   len(c.Segments),
		Segments:      snapshotSegments(c.Segments),
	})
}

func snapshotSegments(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}
