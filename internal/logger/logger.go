// Package logger provides diagnostic logging for timerange using the
// bullets library.
//
// The CLI prints its results (labels, resolved instants, intervals) to
// stdout directly; bullets output is diagnostic only, so the default
// level is info and parsing internals show up at debug:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Catalog miss, deriving label", "expr", "now-13h")
//
//	silentLog := logger.NoLogger() // for tests and --log-level error pipelines
package logger

import (
	"os"

	"github.com/sgaunet/bullets"
)

// defaultLevel is used for unknown or empty level names.
const defaultLevel = bullets.InfoLevel

// Logger is the interface for logging in timerange.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var levels = map[string]bullets.Level{
	"debug": bullets.DebugLevel,
	"info":  bullets.InfoLevel,
	"warn":  bullets.WarnLevel,
	"error": bullets.ErrorLevel,
}

// NewLogger creates a logger writing to stdout at the named level
// ("debug", "info", "warn", "error"); unknown names fall back to info.
func NewLogger(logLevel string) *bullets.Logger {
	level, ok := levels[logLevel]
	if !ok {
		level = defaultLevel
	}
	logger := bullets.New(os.Stdout)
	logger.SetLevel(level)
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the
// level to Fatal, so library results stay the only thing on stdout.
func NoLogger() *bullets.Logger {
	logger := bullets.New(os.Stdout)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
