package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/preset/domain"
	"layoutdss/internal/module/layout/preset/dto"
	"layoutdss/internal/module/layout/preset/repository"
	solvedto "layoutdss/internal/module/layout/solve/dto"
	solveservice "layoutdss/internal/module/layout/solve/service"
	"layoutdss/internal/shared"
)

// Service interface for preset operations
type Service interface {
	Create(ctx context.Context, req *dto.CreatePresetRequest) (*domain.Preset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Preset, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePresetRequest) (*domain.Preset, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SolvePreset solves a stored strip. A nil root distance in the request
	// solves at the preset's default.
	SolvePreset(ctx context.Context, id uuid.UUID, req *dto.SolvePresetRequest) (*solvedto.LayoutModelOutput, error)
}

// service implements Service
type service struct {
	repo     repository.Repository
	solveSvc solveservice.Service
	logger   *zap.Logger
}

// NewService creates a new preset service
func NewService(repo repository.Repository, solveSvc solveservice.Service, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		solveSvc: solveSvc,
		logger:   logger,
	}
}

// Create stores a new preset after checking the name is free
func (s *service) Create(ctx context.Context, req *dto.CreatePresetRequest) (*domain.Preset, error) {
	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing != nil {
		return nil, presetExistsError(req.Name)
	} else if err != nil && !errors.Is(err, shared.ErrPresetNotFound) {
		return nil, err
	}

	preset, err := domain.NewPreset(req.Name, req.Description, dto.Configs(req.Segments), req.DefaultRootDistance)
	if err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		s.logger.Error("Failed to create preset", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Preset created",
		zap.String("preset_id", preset.ID.String()),
		zap.String("name", preset.Name),
		zap.Int("segments", len(req.Segments)))

	return preset, nil
}

// GetByID retrieves a preset
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of presets
func (s *service) List(ctx context.Context, page, pageSize int) ([]domain.Preset, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

// Update applies partial changes to a preset
func (s *service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePresetRequest) (*domain.Preset, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != preset.Name {
		if existing, err := s.repo.GetByName(ctx, *req.Name); err == nil && existing != nil {
			return nil, presetExistsError(*req.Name)
		} else if err != nil && !errors.Is(err, shared.ErrPresetNotFound) {
			return nil, err
		}
		preset.Name = *req.Name
	}

	if req.Description != nil {
		preset.Description = *req.Description
	}

	if req.DefaultRootDistance != nil {
		preset.DefaultRootDistance = *req.DefaultRootDistance
	}

	if req.Segments != nil {
		if err := preset.SetSegmentConfigs(dto.Configs(req.Segments)); err != nil {
			return nil, validationError(err)
		}
	}

	if err := preset.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Update(ctx, preset); err != nil {
		s.logger.Error("Failed to update preset", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Preset updated", zap.String("preset_id", preset.ID.String()))
	return preset, nil
}

// Delete soft-deletes a preset
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Preset deleted", zap.String("preset_id", id.String()))
	return nil
}

// SolvePreset solves a stored strip
func (s *service) SolvePreset(ctx context.Context, id uuid.UUID, req *dto.SolvePresetRequest) (*solvedto.LayoutModelOutput, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	configs, err := preset.SegmentConfigs()
	if err != nil {
		return nil, shared.NewAppError(shared.ErrCodeInternal, "stored segments are unreadable", http.StatusInternalServerError).WithError(err)
	}

	rootDistance := preset.DefaultRootDistance
	if req.RootDistance != nil {
		rootDistance = *req.RootDistance
	}

	solveReq := &solvedto.SolveRequest{
		RootDistance: rootDistance,
		UseCache:     req.UseCache,
		LPCheck:      req.LPCheck,
		IncludeTrace: req.IncludeTrace,
	}
	for _, cfg := range configs {
		solveReq.Segments = append(solveReq.Segments, solvedto.SegmentInput{
			Name:          cfg.Name,
			Base:          cfg.Base,
			CompressRatio: cfg.CompressRatio,
			ExpandRatio:   cfg.ExpandRatio,
			Min:           cfg.Min,
			Max:           cfg.Max,
		})
	}

	s.logger.Info("Solving preset",
		zap.String("preset_id", preset.ID.String()),
		zap.String("name", preset.Name),
		zap.Float64("root_distance", rootDistance))

	return s.solveSvc.Solve(ctx, solveReq)
}

// Fresh AppError instances keep the shared predefined errors immutable.
func presetExistsError(name string) *shared.AppError {
	return shared.NewAppError(shared.ErrCodePresetExists, "Preset already exists", http.StatusConflict).
		WithDetails("name", name)
}

func validationError(err error) *shared.AppError {
	return shared.NewAppError(shared.ErrCodeValidation, err.Error(), http.StatusBadRequest).WithError(err)
}
