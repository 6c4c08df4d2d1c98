// File: standards.go
// Title: Error Standards for stringops
// Description: Module identifiers shared by all packages so that errors can be
//              attributed to the module and operation that produced them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation for error standardization

package errors

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleFormatx = "formatx"
	ModuleLocale  = "locale"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// Detail keys attached by the builder
const (
	DetailModule    = "module"
	DetailOperation = "operation"
)
