// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across gemscli. Codes classify
//              a failure (malformed pattern, unknown type, binding mismatch,
//              configuration problem) independent of its message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with description engine codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Pattern grammar
	CodeDescriptionSyntax Code = "DESCRIPTION_SYNTAX"
	CodeUnknownType       Code = "UNKNOWN_TYPE"

	// Schema binding
	CodeSchemaInvalid Code = "SCHEMA_INVALID"
	CodeBindingFailed Code = "BINDING_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDescriptionSyntax, CodeUnknownType,
		CodeSchemaInvalid, CodeBindingFailed,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDescriptionSyntax, CodeUnknownType:
		return "syntax"
	case CodeSchemaInvalid, CodeBindingFailed:
		return "binding"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
