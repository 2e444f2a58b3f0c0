// File: cli.go
// Title: Request Factory
// Description: Entry points that tie the pieces together: tokenize raw
//              arguments, match them against descriptions and validate the
//              resulting request.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cli

import (
	"github.com/msto63/gemscli/foundation/cli/argument"
	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/cli/request"
	"github.com/msto63/gemscli/foundation/cli/validator"
)

// CreateRequest tokenizes raw with the given style and matches the
// arguments against descs. Without a validator the request stays invalid.
func CreateRequest(opts options.CliOptions, v validator.Validator, raw []string, descs []description.Description) *request.Request {
	args := argument.Create(opts.Prefix, opts.EqualChar, raw)
	req := request.New(args, descs)
	if v != nil {
		v.Validate(descs, req)
	}
	return req
}

// Create builds a validated request using the Windows style
func Create(raw []string, descs []description.Description) *request.Request {
	return CreateRequest(options.WindowsStyle, validator.Default(), raw, descs)
}

// Parse compiles pattern and builds a validated request from raw. Only a
// malformed pattern is an error; invalid arguments yield an invalid request.
func Parse(opts options.CliOptions, provider help.Provider, pattern string, raw []string) (*request.Request, error) {
	descs, err := description.ParseAll(opts, provider, pattern)
	if err != nil {
		return nil, err
	}
	return CreateRequest(opts, validator.Default(), raw, descs), nil
}

// Usage renders descriptions as a pattern string in the given style
func Usage(opts options.CliOptions, descs []description.Description) string {
	return description.Pattern(opts, descs)
}
