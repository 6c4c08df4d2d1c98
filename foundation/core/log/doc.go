// Package log provides structured logging for stringops.
//
// Package: log
// Title: stringops Structured Logging
// Description: This package implements a small structured logger with levels,
//              key/value fields, several output formats and integration with the
//              structured error type: LogError picks the log level from the
//              error's severity and flattens its details into fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - JSON, text, console (ANSI colours) and logfmt formats
// - Level filtering with an always-on audit level
// - Persistent context fields and a correlation id per logger
// - Immutable With* derivation, safe for concurrent use
//
// Usage:
//   import mdwlog "github.com/msto63/stringops/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatText,
//     Output: os.Stderr,
//     Name:   "stringops",
//   })
//   logger.Info("locale resolved", mdwlog.Field("codeset", "UTF-8"))
//   logger.LogError(err)
package log
