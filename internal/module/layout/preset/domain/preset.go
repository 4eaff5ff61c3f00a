package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"layoutdss/internal/module/layout/models/discadelta"
)

// Domain errors
var (
	ErrEmptyName  = errors.New("preset name cannot be empty")
	ErrNoSegments = errors.New("preset must contain at least one segment")
)

// Preset is a stored, named segment strip together with the root distance it
// is usually solved at. The strip itself lives in a JSON column; segment
// order inside the document is the solve order.
type Preset struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;index;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description,omitempty"`

	Segments datatypes.JSON `gorm:"not null;column:segments" json:"segments"`

	DefaultRootDistance float64 `gorm:"not null;column:default_root_distance" json:"default_root_distance"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"deleted_at,omitempty"`
}

// TableName specifies the database table name
func (Preset) TableName() string {
	return "layout_presets"
}

// NewPreset creates a new preset with a generated ID
func NewPreset(name, description string, segments []discadelta.SegmentConfig, defaultRootDistance float64) (*Preset, error) {
	doc, err := json.Marshal(segments)
	if err != nil {
		return nil, err
	}

	p := &Preset{
		ID:                  uuid.New(),
		Name:                name,
		Description:         description,
		Segments:            datatypes.JSON(doc),
		DefaultRootDistance: defaultRootDistance,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the preset invariants
func (p *Preset) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}

	configs, err := p.SegmentConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		return ErrNoSegments
	}

	return nil
}

// SegmentConfigs decodes the stored strip into solver configurations
func (p *Preset) SegmentConfigs() ([]discadelta.SegmentConfig, error) {
	var configs []discadelta.SegmentConfig
	if len(p.Segments) == 0 {
		return configs, nil
	}
	if err := json.Unmarshal(p.Segments, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// SetSegmentConfigs encodes a strip into the JSON column
func (p *Preset) SetSegmentConfigs(configs []discadelta.SegmentConfig) error {
	doc, err := json.Marshal(configs)
	if err != nil {
		return err
	}
	p.Segments = datatypes.JSON(doc)
	return nil
}
