// File: doc.go
// Title: Validation Framework Documentation
// Description: Value-level validation results and composable chains.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework
// - 2026-10-18 v0.2.0: Generic validators

/*
Package validation provides the result types and validator chains used by
the gemscli argument validator.

A Rule[T] inspects a value and returns a Result. Results never carry Go
errors: an invalid result is the normal outcome for bad user input, and
Result.ToError is there for callers that want one anyway.

	chain := validation.NewChain[int]("port").
		AddFunc(func(v int) validation.Result {
			if v <= 0 {
				return validation.Failed(validation.CodeType, "port", "port must be positive", v)
			}
			return validation.NewResult()
		})

	result := chain.Validate(8080)
*/
package validation
