// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the stringops packages and the command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Programmer errors: format template validation
	CodeFormatTooManySpecifiers Code = "FORMAT_TOO_MANY_SPECIFIERS"
	CodeFormatTooFewSpecifiers  Code = "FORMAT_TOO_FEW_SPECIFIERS"
	CodeFormatInvalidChar       Code = "FORMAT_INVALID_CHAR"
	CodeFormatArgumentKind      Code = "FORMAT_ARGUMENT_KIND"
	CodeFormatUnsupportedArg    Code = "FORMAT_UNSUPPORTED_ARGUMENT"

	// Programmer errors: violated call contracts (empty needle, empty delimiter)
	CodePreconditionViolation Code = "PRECONDITION_VIOLATION"

	// Runtime failures
	CodeEncodingError  Code = "ENCODING_ERROR"
	CodeUnknownCodeset Code = "UNKNOWN_CODESET"
	CodeIOError        Code = "IO_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsProgrammerError reports whether the code marks a bug at the call site
// rather than a condition of the environment.
func (c Code) IsProgrammerError() bool {
	switch c {
	case CodeFormatTooManySpecifiers, CodeFormatTooFewSpecifiers, CodeFormatInvalidChar,
		CodeFormatArgumentKind, CodeFormatUnsupportedArg, CodePreconditionViolation:
		return true
	default:
		return false
	}
}
