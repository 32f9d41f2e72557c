package migrations

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateDelegationsTable creates/updates the can_rsvp_for table. The guests
// table must already exist.
func MigrateDelegationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating can_rsvp_for table...")
	if err := db.AutoMigrate(&models.Delegation{}); err != nil {
		configslog.Log.Error("Failed to migrate can_rsvp_for table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Can_rsvp_for table migrated successfully")
	return nil
}
