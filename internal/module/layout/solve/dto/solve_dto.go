package dto

import (
	"layoutdss/internal/module/layout/models/discadelta"
)

// SegmentInput is one segment of an ad-hoc solve request. All numeric fields
// are saturated by the solver, so no binding ranges are enforced here.
type SegmentInput struct {
	Name          string  `json:"name" binding:"required"`
	Base          float64 `json:"base"`
	CompressRatio float64 `json:"compress_ratio"`
	ExpandRatio   float64 `json:"expand_ratio"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
}

// SolveRequest is the body of POST /api/v1/layout/solve and the single
// message a websocket stream client sends.
type SolveRequest struct {
	RootDistance float64        `json:"root_distance"`
	Segments     []SegmentInput `json:"segments" binding:"required,min=1,dive"`

	UseCache     bool `json:"use_cache"`
	LPCheck      bool `json:"lp_check"`
	IncludeTrace bool `json:"include_trace"`
}

// Configs converts the request segments into solver configurations.
func (r *SolveRequest) Configs() []discadelta.SegmentConfig {
	configs := make([]discadelta.SegmentConfig, 0, len(r.Segments))
	for _, s := range r.Segments {
		configs = append(configs, discadelta.SegmentConfig{
			Name:          s.Name,
			Base:          s.Base,
			CompressRatio: s.CompressRatio,
			ExpandRatio:   s.ExpandRatio,
			Min:           s.Min,
			Max:           s.Max,
		})
	}
	return configs
}

// LayoutModelInput is the validated input the layout model executes on.
type LayoutModelInput struct {
	RootDistance float64                    `json:"root_distance"`
	Segments     []discadelta.SegmentConfig `json:"segments"`
	LPCheck      bool                       `json:"lp_check"`
	IncludeTrace bool                       `json:"include_trace"`
}

// LPCheckResult carries the outcome of the optional LP cross-check, the
// variant that enforces maxima. It never replaces the faithful solution.
type LPCheckResult struct {
	Available bool      `json:"available"`
	Solver    string    `json:"solver,omitempty"`
	Distances []float64 `json:"distances,omitempty"`
	Objective float64   `json:"objective,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// OutputMetadata tracks one model execution.
type OutputMetadata struct {
	ExecutionID     string `json:"execution_id"`
	ComputationTime int64  `json:"computation_time_ms"`
	Passes          int    `json:"passes"`
	CacheHit        bool   `json:"cache_hit"`
}

// LayoutModelOutput is the full solve result returned to API callers.
type LayoutModelOutput struct {
	Segments      []discadelta.Segment      `json:"segments"`
	Regime        discadelta.Regime         `json:"regime"`
	InputDistance float64                   `json:"input_distance"`
	AccumBase     float64                   `json:"accum_base"`
	SumDistance   float64                   `json:"sum_distance"`
	Warnings      []string                  `json:"warnings,omitempty"`
	LPCheck       *LPCheckResult            `json:"lp_check,omitempty"`
	Trace         []discadelta.PassSnapshot `json:"trace,omitempty"`
	Metadata      OutputMetadata            `json:"metadata"`
}

// StreamFrame is one websocket message of the solve stream: every cascade
// pass is sent as a "pass" frame, followed by a single "result" frame.
type StreamFrame struct {
	Type   string                   `json:"type"` // "pass" or "result"
	Pass   *discadelta.PassSnapshot `json:"pass,omitempty"`
	Result *LayoutModelOutput       `json:"result,omitempty"`
}
