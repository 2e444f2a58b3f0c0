// File: options.go
// Title: Command-Line Style Options
// Description: Defines CliOptions, the immutable pair of named-argument
//              prefix and name/value separator shared by the pattern parser,
//              the argument factory and the schema reflector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with built-in presets

package options

import (
	"fmt"
	"sort"
	"strings"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// CliOptions describes the command-line style. Values are immutable; copy
// freely.
type CliOptions struct {
	Prefix    string
	EqualChar rune
}

var (
	// WindowsStyle uses "/name:value"
	WindowsStyle = CliOptions{Prefix: "/", EqualChar: ':'}

	// UnixStyle uses "--name=value"
	UnixStyle = CliOptions{Prefix: "--", EqualChar: '='}

	// DashStyle uses "-name:value"
	DashStyle = CliOptions{Prefix: "-", EqualChar: ':'}
)

var presets = map[string]CliOptions{
	"windows": WindowsStyle,
	"unix":    UnixStyle,
	"dash":    DashStyle,
}

// New creates validated options
func New(prefix string, equalChar rune) (CliOptions, error) {
	opts := CliOptions{Prefix: prefix, EqualChar: equalChar}
	if err := opts.Validate(); err != nil {
		return CliOptions{}, err
	}
	return opts, nil
}

// Named returns a built-in preset by case-insensitive name
func Named(name string) (CliOptions, error) {
	opts, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CliOptions{}, gemserror.Newf("unknown style %q", name).
			WithCode(gemserror.CodeNotFound).
			WithOperation("options.Named").
			WithDetail("available", strings.Join(Names(), ","))
	}
	return opts, nil
}

// Names returns the names of the built-in presets in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the prefix is non-empty, the separator is printable
// and the separator does not occur inside the prefix
func (o CliOptions) Validate() error {
	switch {
	case strings.TrimSpace(o.Prefix) == "":
		return gemserror.New("prefix must not be blank").
			WithCode(gemserror.CodeInvalidConfig).
			WithOperation("options.Validate")
	case strings.ContainsAny(o.Prefix, " \t"):
		return gemserror.Newf("prefix %q must not contain whitespace", o.Prefix).
			WithCode(gemserror.CodeInvalidConfig).
			WithOperation("options.Validate")
	case o.EqualChar == 0 || o.EqualChar == ' ' || o.EqualChar == '#':
		return gemserror.Newf("invalid separator %q", o.EqualChar).
			WithCode(gemserror.CodeInvalidConfig).
			WithOperation("options.Validate")
	case strings.ContainsRune(o.Prefix, o.EqualChar):
		return gemserror.Newf("separator %q must not occur in prefix %q", o.EqualChar, o.Prefix).
			WithCode(gemserror.CodeInvalidConfig).
			WithOperation("options.Validate")
	}
	return nil
}

// Separator returns the separator as a string
func (o CliOptions) Separator() string {
	return string(o.EqualChar)
}

// String returns a sample named argument in this style
func (o CliOptions) String() string {
	return fmt.Sprintf("%sname%cvalue", o.Prefix, o.EqualChar)
}
