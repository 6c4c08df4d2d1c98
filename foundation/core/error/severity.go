// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to classify errors and to pick the
//              log level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as malformed user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects the current operation only
	SeverityMedium

	// SeverityHigh indicates a bug at the call site or a broken environment
	SeverityHigh

	// SeverityCritical indicates an error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code == CodeEnvironmentError:
		return SeverityCritical
	case code.IsProgrammerError(), code == CodeInternal:
		return SeverityHigh
	}

	switch code {
	case CodeEncodingError, CodeUnknownCodeset, CodeIOError, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
