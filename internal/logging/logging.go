// Package logging builds the diagnostic logger used across the application.
// Operator-facing console text is not written through it.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds the configuration for the logger
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level string
	// Prefix sets a prefix for all log messages
	Prefix string
	// Writer defaults to os.Stderr
	Writer io.Writer
}

// ParseLevel converts a string level to log.Level
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a new logger with the given configuration
func New(cfg Config) *log.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.Level),
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// GormLogger routes GORM's SQL logging through l. SQL statements are only
// traced at debug level.
func GormLogger(l *log.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if l.GetLevel() <= log.DebugLevel {
		level = gormlogger.Info
	}
	return gormlogger.New(
		l.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
