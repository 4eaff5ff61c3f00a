package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"layoutdss/internal/module/layout/models/discadelta"
	"layoutdss/internal/module/layout/preset/domain"
)

func newTestRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()

	// A named in-memory database keeps the schema visible across pooled
	// connections while isolating each test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Preset{}))

	return NewGormRepository(db), db
}

func mustPreset(t *testing.T, name string) *domain.Preset {
	t.Helper()

	preset, err := domain.NewPreset(name, "", []discadelta.SegmentConfig{
		{Name: "a", Base: 100, CompressRatio: 1, ExpandRatio: 1, Max: 500},
	}, 300)
	require.NoError(t, err)
	return preset
}

func TestGormRepository_ListPagination(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, mustPreset(t, fmt.Sprintf("preset-%d", i))))
	}

	page, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	last, total, err := repo.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, last, 1)
}

func TestGormRepository_SoftDeleteHidesPreset(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	preset := mustPreset(t, "doomed")
	require.NoError(t, repo.Create(ctx, preset))
	require.NoError(t, repo.Delete(ctx, preset.ID))

	_, err := repo.GetByID(ctx, preset.ID)
	assert.Error(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGormRepository_PurgeDeletedBefore(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	preset := mustPreset(t, "old")
	require.NoError(t, repo.Create(ctx, preset))
	require.NoError(t, repo.Delete(ctx, preset.ID))

	// Nothing to purge yet: the deletion is newer than the cutoff.
	purged, err := repo.PurgeDeletedBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, purged)

	// Age the soft delete past the cutoff and purge again.
	require.NoError(t, db.Unscoped().
		Model(&domain.Preset{}).
		Where("id = ?", preset.ID).
		Update("deleted_at", time.Now().Add(-48*time.Hour)).Error)

	purged, err = repo.PurgeDeletedBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var count int64
	require.NoError(t, db.Unscoped().Model(&domain.Preset{}).Count(&count).Error)
	assert.Zero(t, count)
}
