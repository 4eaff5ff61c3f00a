package dto

import (
	"time"

	"github.com/google/uuid"

	"layoutdss/internal/module/layout/models/discadelta"
	solvedto "layoutdss/internal/module/layout/solve/dto"
)

// CreatePresetRequest is the body of POST /api/v1/layout/presets
type CreatePresetRequest struct {
	Name                string                  `json:"name" binding:"required"`
	Description         string                  `json:"description"`
	DefaultRootDistance float64                 `json:"default_root_distance"`
	Segments            []solvedto.SegmentInput `json:"segments" binding:"required,min=1,dive"`
}

// UpdatePresetRequest is the body of PUT /api/v1/layout/presets/:id.
// Nil fields are left unchanged.
type UpdatePresetRequest struct {
	Name                *string                 `json:"name"`
	Description         *string                 `json:"description"`
	DefaultRootDistance *float64                `json:"default_root_distance"`
	Segments            []solvedto.SegmentInput `json:"segments"`
}

// SolvePresetRequest is the body of POST /api/v1/layout/presets/:id/solve.
// A nil root distance solves at the preset's default.
type SolvePresetRequest struct {
	RootDistance *float64 `json:"root_distance"`
	UseCache     bool     `json:"use_cache"`
	LPCheck      bool     `json:"lp_check"`
	IncludeTrace bool     `json:"include_trace"`
}

// PresetResponse is the API representation of a stored preset
type PresetResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	Name                string                     `json:"name"`
	Description         string                     `json:"description,omitempty"`
	DefaultRootDistance float64                    `json:"default_root_distance"`
	Segments            []discadelta.SegmentConfig `json:"segments"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// Configs converts request segment inputs into solver configurations
func Configs(segments []solvedto.SegmentInput) []discadelta.SegmentConfig {
	configs := make([]discadelta.SegmentConfig, 0, len(segments))
	for _, s := range segments {
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
