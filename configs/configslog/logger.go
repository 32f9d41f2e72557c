package configslog

import (
	"os"

	"go.uber.org/zap"
)

// Log is the structured logger, SLog the sugared variant of the same core.
// Both default to no-ops so packages can log before InitLogger runs.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger builds the global loggers. Call once at startup.
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("logger init failed: " + err.Error())
	}
	SLog = Log.Sugar()
}

// SyncLogger flushes buffered log entries. Call via defer from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
