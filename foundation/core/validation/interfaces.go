// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Result and error types shared by all validators, and the
//              Rule contract. Validation failures are values, not
//              errors: a failed Result is the expected outcome for bad end
//              user input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-18 v0.2.0: Generic validators, argument validation codes

package validation

import (
	"fmt"
	"strings"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// Validation codes reported by the argument validator
const (
	CodeRequired     = "VALIDATION_REQUIRED"     // required parameter missing
	CodeMultiplicity = "VALIDATION_MULTIPLICITY" // single parameter given more than once
	CodeType         = "VALIDATION_TYPE"         // value does not fit the parameter type
	CodeFlagValue    = "VALIDATION_FLAG_VALUE"   // untyped flag given a value
	CodeUnknown      = "VALIDATION_UNKNOWN"      // named argument matches no parameter
	CodeSurplus      = "VALIDATION_SURPLUS"      // positional argument matches no parameter
)

// Rule validates a value of type T
type Rule[T any] interface {
	Validate(value T) Result
}

// RuleFunc adapts a plain function to the Rule interface
type RuleFunc[T any] func(value T) Result

// Validate implements Rule
func (f RuleFunc[T]) Validate(value T) Result {
	return f(value)
}

// Result represents the outcome of a validation
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors,omitempty"`
}

// Error is a single validation failure
type Error struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewResult creates a successful result
func NewResult() Result {
	return Result{Valid: true}
}

// Failed creates a failed result with a single field error
func Failed(code, field, message string, value interface{}) Result {
	r := NewResult()
	r.AddFieldError(code, field, message, value)
	return r
}

// AddError adds an error to the result
func (r *Result) AddError(code, message string) *Result {
	return r.AddFieldError(code, "", message, nil)
}

// AddFieldError adds a field-specific error to the result
func (r *Result) AddFieldError(code, field, message string, value interface{}) *Result {
	r.Valid = false
	r.Errors = append(r.Errors, Error{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// ErrorMessages returns all error messages
func (r Result) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r Result) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts a failed result to a coded error, or nil when valid
func (r Result) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return gemserror.New("validation failed").WithCode(gemserror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := gemserror.New(first.Message).
		WithCode(gemserror.CodeValidationFailed).
		WithDetail("reason", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
	}
	return err
}

// String returns a human-readable representation of the result
func (r Result) String() string {
	if r.Valid {
		return "Result{valid: true}"
	}
	return fmt.Sprintf("Result{valid: false, errors: [%s]}", strings.Join(r.ErrorMessages(), "; "))
}

// Combine merges multiple results into one
func Combine(results ...Result) Result {
	combined := NewResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
