package database

import (
	"log/slog"

	"learnsmart-backend/internal/database/versions/migration_0"
	"learnsmart-backend/internal/database/versions/migration_1"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:       "0",
			Migrate:  migration_0.Migration,
			Rollback: migration_0.Rollback,
		},
		{
			ID:       "1",
			Migrate:  migration_1.Migration,
			Rollback: migration_1.Rollback,
		},
	})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// Runs only when no previous migration is recorded, so a clean database
		// gets the latest schema directly instead of replaying every version.
		slog.Info("clean database detected, running full schema initialization")

		return txn.AutoMigrate(&Question{})
	})

	return migrator
}
