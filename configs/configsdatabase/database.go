package configsdatabase

import (
	"nightsky.wedding/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the Postgres connection pool. Fatal on failure; the
// application cannot do anything without its store.
func InitDB(dsn string) {
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}
	configslog.SLog.Info("database connection established")
}

// GetDB returns the shared connection handle.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the underlying sql.DB pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("could not access underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("database close failed", zap.Error(err))
	}
}
