package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"layoutdss/internal/module/layout/preset/domain"
	"layoutdss/internal/shared"
)

// gormRepository implements Repository using GORM
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create stores a new preset
func (r *gormRepository) Create(ctx context.Context, preset *domain.Preset) error {
	if err := r.db.WithContext(ctx).Create(preset).Error; err != nil {
		return err
	}
	return nil
}

// GetByID retrieves a live preset by ID
func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error) {
	var preset domain.Preset
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrPresetNotFound
		}
		return nil, err
	}
	return &preset, nil
}

// GetByName retrieves a live preset by name
func (r *gormRepository) GetByName(ctx context.Context, name string) (*domain.Preset, error) {
	var preset domain.Preset
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrPresetNotFound
		}
		return nil, err
	}
	return &preset, nil
}

// List returns a page of live presets ordered by name
func (r *gormRepository) List(ctx context.Context, page, pageSize int) ([]domain.Preset, int64, error) {
	var presets []domain.Preset
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.Preset{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&presets).Error; err != nil {
		return nil, 0, err
	}

	return presets, total, nil
}

// ListAll returns every live preset
func (r *gormRepository) ListAll(ctx context.Context) ([]domain.Preset, error) {
	var presets []domain.Preset
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&presets).Error; err != nil {
		return nil, err
	}
	return presets, nil
}

// Update persists changes to an existing preset
func (r *gormRepository) Update(ctx context.Context, preset *domain.Preset) error {
	result := r.db.WithContext(ctx).Save(preset)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a preset
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Preset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrPresetNotFound
	}
	return nil
}

// PurgeDeletedBefore permanently removes presets soft-deleted before cutoff
func (r *gormRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&domain.Preset{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
