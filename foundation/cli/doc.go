// File: doc.go
// Title: CLI Engine Documentation
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package cli builds validated requests from raw command-line arguments.

The subpackages hold the parts:

  - options: prefix and separator styles
  - types: parameter types and the type registry
  - help: help text providers and catalogs
  - description: the pattern grammar
  - argument: tokenizing raw arguments
  - request: matching arguments to descriptions
  - validator: deciding whether a request is valid
  - schema: deriving patterns from Go types and binding values

Typical use:

	req, err := cli.Parse(options.UnixStyle, help.None, "file [--verbose]", os.Args[1:])
	if err != nil {
		return err // bad pattern
	}
	if !req.Valid() {
		for _, f := range req.Failures() {
			fmt.Fprintln(os.Stderr, f.Message)
		}
		os.Exit(2)
	}
*/
package cli
