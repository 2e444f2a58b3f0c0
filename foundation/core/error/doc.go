// Package error provides structured error handling for gemscli.
//
// Package: error
// Title: gemscli Error Handling
// Description: Structured errors with codes, severities and details. The
//              description parser, the type registry, the schema binder and
//              the configuration loader all report failures through this
//              package so that callers can branch on the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Codes for the description engine
//
// Usage:
//
//	import gemserror "github.com/msto63/gemscli/foundation/core/error"
//
//	err := gemserror.New("description has no name").
//		WithCode(gemserror.CodeDescriptionSyntax).
//		WithDetail("pattern", "--=int").
//		WithOperation("description.ParseOne")
//
//	if gemserror.HasCode(err, gemserror.CodeDescriptionSyntax) {
//		// the pattern is broken, not the user input
//	}
package error
