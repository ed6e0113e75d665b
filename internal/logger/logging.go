// Package logger builds prefixed charmbracelet/log instances for the
// subsystems that want their own logger. Output goes to stderr so the
// msgpack stream on stdout stays clean.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log following the current global level.
func New(prefix string) *log.Logger {
	return NewAt(prefix, log.GetLevel())
}

// NewAt creates a prefixed charm log pinned to an explicit level,
// independent of the global setting.
func NewAt(prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}
