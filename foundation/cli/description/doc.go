// File: doc.go
// Title: Pattern Grammar Documentation
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package description compiles usage patterns into parameter descriptions.

A pattern is a list of tokens separated by single spaces. Each token
describes one parameter:

	[--count#=int]
	│ │     ││ └── type tag, resolved through the type registry
	│ │     │└──── separator (CliOptions.EqualChar)
	│ │     └───── may repeat
	│ └─────────── named parameter (CliOptions.Prefix)
	└───────────── optional

The parts are stripped in a fixed order: surrounding whitespace, brackets,
prefix, the repeat marker, and finally the separator. The repeat marker is
accepted at the end of the token or directly before the separator.

Positional parameters without a type tag are strings. Named parameters
without a type tag are flags and take no value.

	descs, err := description.ParseAll(options.UnixStyle, help.None, "file [--verbose] [--count#=int]")
	if description.IsSyntaxError(err) {
		// the pattern itself is wrong
	}

A blank pattern parses to an empty list, while ParseOne rejects a blank
token.
*/
package description
