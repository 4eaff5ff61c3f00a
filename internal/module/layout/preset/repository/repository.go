package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"layoutdss/internal/module/layout/preset/domain"
)

// Repository defines preset persistence operations
type Repository interface {
	// Create stores a new preset
	Create(ctx context.Context, preset *domain.Preset) error

	// GetByID retrieves a live preset by ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error)

	// GetByName retrieves a live preset by name
	GetByName(ctx context.Context, name string) (*domain.Preset, error)

	// List returns a page of live presets ordered by name, plus the total count
	List(ctx context.Context, page, pageSize int) ([]domain.Preset, int64, error)

	// ListAll returns every live preset; the cache warm job iterates this
	ListAll(ctx context.Context) ([]domain.Preset, error)

	// Update persists changes to an existing preset
	Update(ctx context.Context, preset *domain.Preset) error

	// Delete soft-deletes a preset
	Delete(ctx context.Context, id uuid.UUID) error

	// PurgeDeletedBefore permanently removes presets soft-deleted before the
	// cutoff and returns how many rows went away
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
