// File: factory.go
// Title: Logger Factory
// Description: Builds foundation loggers for the stringops command from the
//              loaded configuration. The auto format picks console output on
//              a terminal and JSON otherwise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	mdwlog "github.com/msto63/stringops/foundation/core/log"
)

// FormatAuto selects console output on a terminal and JSON elsewhere
const FormatAuto = "auto"

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: auto, json, text, console or logfmt (default: auto)
	Format string

	// Output defaults to stderr
	Output io.Writer

	// CorrelationID is generated when empty
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: FormatAuto,
	}
}

// NewLogger creates a foundation logger stamped with a correlation id.
// Unknown levels fall back to info, unknown formats to JSON.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: resolveFormat(cfg.Format, output),
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

func resolveFormat(format string, output io.Writer) mdwlog.Format {
	if format == "" || format == FormatAuto {
		if IsTerminal(output) {
			return mdwlog.FormatConsole
		}
		return mdwlog.FormatJSON
	}
	f, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatJSON
	}
	return f
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
