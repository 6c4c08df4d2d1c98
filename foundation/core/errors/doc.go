// Package errors provides the standard error constructors used by every
// stringops foundation module.
//
// Package: errors
// Title: Standard Error Handling API for stringops
// Description: This package wraps the core error type with a fluent builder and a
//              small set of constructors (invalid input, invalid format, out of
//              range, precondition violation, encoding failure) so that all modules
//              attach the same module/operation details and codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation for cross-module error standardization
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleStringx).
//		Operation("Tokenize").
//		Message("empty delimiter").
//		Code(mdwerror.CodePreconditionViolation).
//		Build()
//
//	if errors.IsModuleOperation(err, errors.ModuleStringx, "Tokenize") {
//		// ...
//	}
package errors
