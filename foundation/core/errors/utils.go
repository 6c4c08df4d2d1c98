// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors used
//              across all stringops modules for consistent error patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details[DetailModule] = eb.module
	if eb.operation != "" {
		eb.details[DetailOperation] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	// Severity before code: an explicitly chosen severity must survive WithCode.
	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithOperation(qualified(eb.module, eb.operation)).
		WithDetails(eb.details)
}

func qualified(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error wrapping cause
func InvalidFormat(module, operation string, cause error, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error wrapping cause
func OutOfRange(module, operation string, cause error, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Cause(cause).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// PreconditionViolation creates the error raised when a caller breaks a call
// contract. It is a programmer error and is usually panicked with.
func PreconditionViolation(module, operation string, cause error, requirement string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: precondition violated: %s", module, operation, requirement).
		Cause(cause).
		Code(mdwerror.CodePreconditionViolation).
		Detail("requirement", requirement).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// EncodingFailed creates a standardized character conversion error
func EncodingFailed(module, operation string, cause error, codeset string, offset int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: conversion failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeEncodingError).
		Detail("codeset", codeset).
		Detail("offset", offset).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error, code mdwerror.Code) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(code).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)[DetailModule].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)[DetailOperation].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
