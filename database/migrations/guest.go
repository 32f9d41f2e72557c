package migrations

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateGuestsTable creates/updates the guests table.
func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guests table...")
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		configslog.Log.Error("Failed to migrate guests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Guests table migrated successfully")
	return nil
}
