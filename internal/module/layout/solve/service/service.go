package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"layoutdss/internal/config"
	"layoutdss/internal/module/layout/mbms"
	"layoutdss/internal/module/layout/models/segmentlayout"
	"layoutdss/internal/module/layout/solve/dto"
	"layoutdss/internal/shared"
)

// Service interface for layout solve operations
type Service interface {
	// Solve runs the segment layout model on an ad-hoc request.
	Solve(ctx context.Context, req *dto.SolveRequest) (*dto.LayoutModelOutput, error)
}

// service wraps the model with logging and result caching
type service struct {
	model    *segmentlayout.Model
	cache    mbms.ResultCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new layout solve service
func NewService(model *segmentlayout.Model, cache mbms.ResultCache, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		model:    model,
		cache:    cache,
		cacheTTL: time.Duration(cfg.Cache.SolveTTLMin) * time.Minute,
		logger:   logger,
	}
}

// Solve runs the segment layout model
func (s *service) Solve(ctx context.Context, req *dto.SolveRequest) (*dto.LayoutModelOutput, error) {
	input := &dto.LayoutModelInput{
		RootDistance: req.RootDistance,
		Segments:     req.Configs(),
		LPCheck:      req.LPCheck,
		IncludeTrace: req.IncludeTrace,
	}

	if err := s.model.Validate(ctx, input); err != nil {
		s.logger.Error("Layout solve validation failed", zap.Error(err))
		return nil, shared.NewAppError(shared.ErrCodeValidation, err.Error(), http.StatusBadRequest).WithError(err)
	}

	// Traced solves are not cached; the trace is as large as the work it
	// describes and streaming callers want fresh passes anyway.
	useCache := req.UseCache && !req.IncludeTrace

	var key string
	if useCache {
		key = cacheKey(input)
		if output := s.cachedOutput(ctx, key); output != nil {
			s.logger.Info("Layout solve served from cache",
				zap.String("cache_key", key),
				zap.Int("segments", len(req.Segments)))
			output.Metadata.CacheHit = true
			return output, nil
		}
	}

	result, err := s.model.Execute(ctx, input)
	if err != nil {
		s.logger.Error("Layout solve execution failed", zap.Error(err))
		return nil, err
	}

	output := result.(*dto.LayoutModelOutput)

	if useCache {
		s.storeOutput(ctx, key, output)
	}

	s.logger.Info("Layout solve executed",
		zap.String("execution_id", output.Metadata.ExecutionID),
		zap.String("regime", string(output.Regime)),
		zap.Int("segments", len(output.Segments)),
		zap.Int("passes", output.Metadata.Passes),
		zap.Int64("computation_time_ms", output.Metadata.ComputationTime))

	return output, nil
}

// cachedOutput loads a cached solve. Cache failures degrade to a miss.
func (s *service) cachedOutput(ctx context.Context, key string) *dto.LayoutModelOutput {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Layout solve cache lookup failed", zap.Error(err))
		return nil
	}
	if cached == nil {
		return nil
	}

	// The cached output travels through JSON, so it comes back as a generic
	// map and needs one more round trip into the typed DTO.
	data, err := json.Marshal(cached.Output)
	if err != nil {
		return nil
	}
	var output dto.LayoutModelOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil
	}
	return &output
}

func (s *service) storeOutput(ctx context.Context, key string, output *dto.LayoutModelOutput) {
	result := &mbms.ModelResult{
		Output: output,
		Metadata: mbms.ModelMetadata{
			ModelName:   segmentlayout.ModelName,
			ExecutionID: output.Metadata.ExecutionID,
			Status:      "success",
		},
	}

	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		s.logger.Warn("Layout solve cache store failed", zap.Error(err))
	}
}

// cacheKey digests the canonical JSON of the model input. Identical strips
// solved at the same distance share a cache entry.
func cacheKey(input *dto.LayoutModelInput) string {
	data, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
