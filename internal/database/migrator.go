package database

import (
	"fmt"

	presetdomain "layoutdss/internal/module/layout/preset/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate runs automatic database migrations for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	entities := []interface{}{
		&presetdomain.Preset{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			log.Error("Migration failed", zap.Error(err))
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}

	log.Info("Database migrations completed", zap.Int("entities", len(entities)))
	return nil
}

// DropAllTables drops every entity table; used by `migrate reset`
func DropAllTables(db *gorm.DB, log *zap.Logger) error {
	log.Warn("Dropping all tables...")

	entities := []interface{}{
		&presetdomain.Preset{},
	}

	for _, entity := range entities {
		if err := db.Migrator().DropTable(entity); err != nil {
			log.Error("Drop table failed", zap.Error(err))
			return fmt.Errorf("failed to drop table for %T: %w", entity, err)
		}
	}

	return nil
}
