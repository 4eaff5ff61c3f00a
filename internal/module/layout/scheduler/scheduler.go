package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"layoutdss/internal/config"
	presetdto "layoutdss/internal/module/layout/preset/dto"
	presetrepo "layoutdss/internal/module/layout/preset/repository"
	presetservice "layoutdss/internal/module/layout/preset/service"
)

// Service runs the background maintenance jobs: periodically re-solving
// stored presets so their cache entries stay warm, and purging presets that
// have been soft-deleted past the retention window.
type Service interface {
	Start()
	Stop()
}

type schedulerService struct {
	cron       *cron.Cron
	presetSvc  presetservice.Service
	presetRepo presetrepo.Repository
	cfg        *config.Config
	logger     *zap.Logger
	isRunning  bool
}

// NewService creates a new scheduler service
func NewService(
	presetSvc presetservice.Service,
	presetRepo presetrepo.Repository,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &schedulerService{
		cron:       cron.New(),
		presetSvc:  presetSvc,
		presetRepo: presetRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *schedulerService) Start() {
	if s.isRunning {
		s.logger.Warn("Scheduler is already running")
		return
	}

	if !s.cfg.Scheduler.Enabled {
		s.logger.Info("Scheduler disabled by configuration")
		return
	}

	s.logger.Info("Starting layout scheduler")

	warmSpec := fmt.Sprintf("@every %dm", s.cfg.Scheduler.WarmIntervalMin)
	if _, err := s.cron.AddFunc(warmSpec, s.warmPresetCache); err != nil {
		s.logger.Error("Failed to schedule preset cache warm job", zap.Error(err))
	}

	if _, err := s.cron.AddFunc("@daily", s.purgeDeletedPresets); err != nil {
		s.logger.Error("Failed to schedule preset purge job", zap.Error(err))
	}

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("Layout scheduler started",
		zap.String("warm_interval", warmSpec),
		zap.Int("purge_retention_days", s.cfg.Scheduler.PurgeRetentionDays),
		zap.Int("total_jobs", len(s.cron.Entries())),
	)
}

func (s *schedulerService) Stop() {
	if !s.isRunning {
		return
	}

	s.logger.Info("Stopping layout scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
}

// warmPresetCache re-solves every live preset at its default root distance
// with caching on, so interactive solves of known strips hit the cache.
func (s *schedulerService) warmPresetCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	presets, err := s.presetRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Preset cache warm: listing presets failed", zap.Error(err))
		return
	}

	warmed := 0
	for i := range presets {
		req := &presetdto.SolvePresetRequest{UseCache: true}
		if _, err := s.presetSvc.SolvePreset(ctx, presets[i].ID, req); err != nil {
			s.logger.Warn("Preset cache warm: solve failed",
				zap.String("preset_id", presets[i].ID.String()),
				zap.Error(err))
			continue
		}
		warmed++
	}

	s.logger.Info("Preset cache warm completed",
		zap.Int("presets", len(presets)),
		zap.Int("warmed", warmed))
}

// purgeDeletedPresets removes soft-deleted presets past the retention window.
func (s *schedulerService) purgeDeletedPresets() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Scheduler.PurgeRetentionDays)
	purged, err := s.presetRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("Preset purge failed", zap.Error(err))
		return
	}

	if purged > 0 {
		s.logger.Info("Purged soft-deleted presets",
			zap.Int64("purged", purged),
			zap.Time("cutoff", cutoff))
	}
}
