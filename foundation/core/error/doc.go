// Package error provides structured error handling for the stringops foundation.
//
// Package: error
// Title: stringops Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severity levels, key/value details and stack traces. Every stringops
//              package reports failures through it so that callers and the CLI can
//              branch on codes and log errors with full context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes (format validation, preconditions, encoding, parsing)
// - Stack trace capture for debugging
// - Severity levels that the logger maps onto log levels
// - errors.Is/errors.As compatibility through Unwrap
//
// Usage:
//   import mdwerror "github.com/msto63/stringops/foundation/core/error"
//
//   err := mdwerror.Wrap(ErrWrongArgumentKind, "wrong argument kind for specifier").
//     WithCode(mdwerror.CodeFormatArgumentKind).
//     WithDetail("specifier", "d").
//     WithDetail("argument", 0)
//
//   if mdwerror.HasCode(err, mdwerror.CodeFormatArgumentKind) {
//     // caller bug: fix the call site
//   }
package error
