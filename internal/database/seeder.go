package database

import (
	"errors"

	"layoutdss/internal/module/layout/models/discadelta"
	presetdomain "layoutdss/internal/module/layout/preset/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder seeds demo layout presets for development runs
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// SeedAll seeds every demo preset that does not exist yet
func (s *Seeder) SeedAll() error {
	for _, seed := range demoPresets() {
		if err := s.seedPreset(seed.name, seed.description, seed.segments, seed.rootDistance); err != nil {
			return err
		}
	}

	s.logger.Info("Demo presets seeded")
	return nil
}

type presetSeed struct {
	name         string
	description  string
	rootDistance float64
	segments     []discadelta.SegmentConfig
}

// demoPresets returns the built-in strips. The engine-demo strip is the
// four-segment configuration the engine's debug trace used.
func demoPresets() []presetSeed {
	return []presetSeed{
		{
			name:         "engine-demo",
			description:  "Four-segment demo strip with a clamped minimum and a solidified segment",
			rootDistance: 800,
			segments: []discadelta.SegmentConfig{
				{Name: "1", Base: 200, CompressRatio: 0.7, ExpandRatio: 0.1, Min: 0, Max: 100},
				{Name: "2", Base: 200, CompressRatio: 1.0, ExpandRatio: 1.0, Min: 300, Max: 800},
				{Name: "3", Base: 150, CompressRatio: 0.0, ExpandRatio: 2.0, Min: 0, Max: 200},
				{Name: "4", Base: 350, CompressRatio: 0.3, ExpandRatio: 0.5, Min: 50, Max: 300},
			},
		},
		{
			name:         "editor-shell",
			description:  "Sidebar / content / inspector strip of an editor window",
			rootDistance: 1280,
			segments: []discadelta.SegmentConfig{
				{Name: "sidebar", Base: 240, CompressRatio: 0.5, ExpandRatio: 0, Min: 160, Max: 400},
				{Name: "content", Base: 640, CompressRatio: 0.8, ExpandRatio: 1, Min: 320, Max: 4000},
				{Name: "inspector", Base: 320, CompressRatio: 0.6, ExpandRatio: 0.25, Min: 200, Max: 480},
			},
		},
		{
			name:         "split-view",
			description:  "Two equal panes sharing all surplus evenly",
			rootDistance: 900,
			segments: []discadelta.SegmentConfig{
				{Name: "left", Base: 400, CompressRatio: 1, ExpandRatio: 1, Min: 100, Max: 2000},
				{Name: "right", Base: 400, CompressRatio: 1, ExpandRatio: 1, Min: 100, Max: 2000},
			},
		},
	}
}

func (s *Seeder) seedPreset(name, description string, segments []discadelta.SegmentConfig, rootDistance float64) error {
	var existing presetdomain.Preset
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	preset, err := presetdomain.NewPreset(name, description, segments, rootDistance)
	if err != nil {
		return err
	}

	if err := s.db.Create(preset).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded demo preset",
		zap.String("name", name),
		zap.Int("segments", len(segments)))
	return nil
}
