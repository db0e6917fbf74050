package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	historydomain "simplexdss/internal/module/history/domain"
)

// AutoMigrate runs automatic database migrations for all entities.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	entities := []interface{}{
		&historydomain.SolveRecord{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			log.Error("Migration failed", zap.Error(err))
			return fmt.Errorf("migrating %T: %w", entity, err)
		}
	}

	log.Info("Database migrations complete", zap.Int("entities", len(entities)))
	return nil
}
