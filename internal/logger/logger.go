// Package logger configures the process-wide diagnostic logger. Output
// goes to a rotating file under the config directory; verbose mode mirrors
// it to stderr at debug level.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *log.Logger

type Config struct {
	Verbose bool
	Dir     string
}

// Init initializes the global logger. Safe to call once at startup;
// logging before Init is a no-op.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.Dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "chartwell.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}

	level := log.WarnLevel
	writer := io.Writer(fileWriter)
	if cfg.Verbose {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	logger = log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "chartwell",
	})
	return nil
}

// Debug logs a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}

// Warn logs a warning message with optional key/value pairs.
func Warn(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message with optional key/value pairs.
func Error(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Error(msg, keyvals...)
	}
}
