// File: doc.go
// Title: Schema Package Documentation
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package schema binds command-line arguments to Go values.

A schema lists the fields of a target type explicitly. Each field knows its
identifier, the type tag used for conversion and how to set the value:

	type printArgs struct {
		Count int
		Label string
	}

	var printSchema = schema.MustNew(
		schema.Int("Count", func(a *printArgs, v int) { a.Count = v }),
		schema.String("Label", func(a *printArgs, v string) { a.Label = v }).Named(""),
	)

	args, err := schema.Bind(options.DashStyle, printSchema, os.Args[1:])
	switch {
	case err != nil:
		// programming error: bad pattern or conversion
	case args == nil:
		// the user gave invalid arguments
	}

Fields are positional by default and named after their lower-cased
identifier. DeriveSyntax renders the schema above as
"count:int -label:string" in dash style.
*/
package schema
