// Package logger owns the process-wide zap logger shared by the API
// server and the migrate CLI.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init builds the global logger for the given environment: JSON output
// for "production", console output otherwise. Subsequent calls are
// no-ops.
func Init(env string) {
	once.Do(func() {
		var zl *zap.Logger
		var err error
		if env == "production" {
			zl, err = zap.NewProduction()
		} else {
			zl, err = zap.NewDevelopment()
		}
		if err != nil {
			zl = zap.NewNop()
		}
		global = zl.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development
// logger if Init has not run yet.
func Get() *zap.SugaredLogger {
	if global == nil {
		Init("development")
	}
	return global
}

// Sync flushes buffered entries. Called on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
