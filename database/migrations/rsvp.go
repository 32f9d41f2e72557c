package migrations

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable creates/updates the rsvp_guest ledger table.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvp_guest table...")
	if err := db.AutoMigrate(&models.RSVPEntry{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvp_guest table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvp_guest table migrated successfully")
	return nil
}
