package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"layoutdss/internal/config"
	"layoutdss/internal/module/layout/mbms"
	"layoutdss/internal/module/layout/models/discadelta"
	"layoutdss/internal/module/layout/models/segmentlayout"
	presetdomain "layoutdss/internal/module/layout/preset/domain"
	"layoutdss/internal/module/layout/preset/dto"
	"layoutdss/internal/module/layout/preset/repository"
	solvedto "layoutdss/internal/module/layout/solve/dto"
	solveservice "layoutdss/internal/module/layout/solve/service"
	"layoutdss/internal/shared"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	// A named in-memory database keeps the schema visible across pooled
	// connections while isolating each test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&presetdomain.Preset{}))

	logger := zap.NewNop()
	repo := repository.NewGormRepository(db)

	model := segmentlayout.NewModel(logger)
	cfg := &config.Config{Cache: config.CacheConfig{SolveTTLMin: 5}}
	solveSvc := solveservice.NewService(model, mbms.NewRedisCache(nil), cfg, logger)

	return NewService(repo, solveSvc, logger)
}

func createRequest(name string) *dto.CreatePresetRequest {
	return &dto.CreatePresetRequest{
		Name:                name,
		Description:         "two pane split",
		DefaultRootDistance: 400,
		Segments: []solvedto.SegmentInput{
			{Name: "S1", Base: 100, CompressRatio: 0.5, ExpandRatio: 1, Min: 0, Max: 500},
			{Name: "S2", Base: 100, CompressRatio: 0.5, ExpandRatio: 3, Min: 0, Max: 500},
		},
	}
}

func TestPresetService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	preset, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, preset.ID)

	fetched, err := svc.GetByID(ctx, preset.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", fetched.Name)

	configs, err := fetched.SegmentConfigs()
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "S1", configs[0].Name)
}

func TestPresetService_CreateDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("demo"))
	require.Error(t, err)

	appErr := shared.ToAppError(err)
	assert.Equal(t, shared.ErrCodePresetExists, appErr.Code)
}

func TestPresetService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	preset, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)

	newName := "renamed"
	newDistance := 900.0
	updated, err := svc.Update(ctx, preset.ID, &dto.UpdatePresetRequest{
		Name:                &newName,
		DefaultRootDistance: &newDistance,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, 900.0, updated.DefaultRootDistance)

	// Segments stay untouched by a partial update
	configs, err := updated.SegmentConfigs()
	require.NoError(t, err)
	assert.Len(t, configs, 2)
}

func TestPresetService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	preset, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, preset.ID))

	_, err = svc.GetByID(ctx, preset.ID)
	require.Error(t, err)
	assert.Equal(t, shared.ErrCodePresetNotFound, shared.ToAppError(err).Code)

	// Deleting twice reports not found
	err = svc.Delete(ctx, preset.ID)
	require.Error(t, err)
}

func TestPresetService_SolvePreset_DefaultDistance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	preset, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)

	output, err := svc.SolvePreset(ctx, preset.ID, &dto.SolvePresetRequest{})
	require.NoError(t, err)

	assert.Equal(t, discadelta.RegimeExpand, output.Regime)
	assert.InDelta(t, 400, output.SumDistance, 1e-9)
	require.Len(t, output.Segments, 2)
	assert.InDelta(t, 150, output.Segments[0].Distance, 1e-9)
	assert.InDelta(t, 250, output.Segments[1].Distance, 1e-9)
}

func TestPresetService_SolvePreset_OverrideDistance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	preset, err := svc.Create(ctx, createRequest("demo"))
	require.NoError(t, err)

	override := 200.0
	output, err := svc.SolvePreset(ctx, preset.ID, &dto.SolvePresetRequest{RootDistance: &override})
	require.NoError(t, err)

	assert.InDelta(t, 200, output.SumDistance, 1e-9)
	for _, seg := range output.Segments {
		assert.InDelta(t, 100, seg.Distance, 1e-9)
	}
}

func TestPresetService_SolvePreset_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SolvePreset(context.Background(), uuid.New(), &dto.SolvePresetRequest{})
	require.Error(t, err)
	assert.Equal(t, shared.ErrCodePresetNotFound, shared.ToAppError(err).Code)
}
