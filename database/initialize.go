package database

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/database/migrations"
	"nightsky.wedding/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Could not start database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Rolling back after initialization error.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Additional error during rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations completed.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := seeders.SeedDemoGuests(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders completed.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder migrates tables in dependency order: guests first,
// then everything that references them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateGuestsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateDelegationsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateRSVPTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateMessagesTable(db); err != nil {
		return err
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}
