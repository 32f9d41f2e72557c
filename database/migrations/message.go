package migrations

import (
	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateMessagesTable creates/updates the messages table.
func MigrateMessagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating messages table...")
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		configslog.Log.Error("Failed to migrate messages table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Messages table migrated successfully")
	return nil
}
