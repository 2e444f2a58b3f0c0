// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when an *Error is passed to LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-18 v0.2.0: Severity mapping for description engine codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller is expected to report
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a known code
	SeverityMedium

	// SeverityHigh indicates a programming or configuration mistake, such as
	// a malformed pattern authored by the developer
	SeverityHigh

	// SeverityCritical indicates an internal inconsistency
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

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeBindingFailed:
		return SeverityCritical
	case CodeDescriptionSyntax, CodeUnknownType, CodeSchemaInvalid,
		CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
