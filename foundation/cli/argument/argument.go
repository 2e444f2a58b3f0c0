// File: argument.go
// Title: Argument Factory
// Description: Turns raw command-line strings into name/value arguments
//              using the configured prefix and separator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package argument

import (
	"strings"

	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

// Argument is one raw command-line token. Named arguments carry the name
// without prefix; positional arguments have an empty Name.
type Argument struct {
	Name  string
	Value string
}

// Named reports whether the argument was given with the prefix
func (a Argument) Named() bool {
	return a.Name != ""
}

// String renders the argument for logs as name=value, without prefix.
// Format renders it in a given style.
func (a Argument) String() string {
	if !a.Named() {
		return a.Value
	}
	if a.Value == "" {
		return a.Name
	}
	return a.Name + "=" + a.Value
}

// Format renders the argument the way Create would read it back with the
// same prefix and separator
func (a Argument) Format(prefix string, equalChar rune) string {
	if !a.Named() {
		return a.Value
	}
	if a.Value == "" {
		return prefix + a.Name
	}
	return prefix + a.Name + string(equalChar) + a.Value
}

// Create tokenizes raw arguments. A token starting with prefix is named and
// split at the first equalChar; a bare flag has an empty value. Tokens that
// consist of the prefix alone, or whose name would be blank, are positional.
// Blank tokens are skipped.
func Create(prefix string, equalChar rune, raw []string) []Argument {
	args := make([]Argument, 0, len(raw))
	for _, token := range raw {
		if gemsstringx.IsBlank(token) {
			continue
		}
		args = append(args, parse(prefix, equalChar, token))
	}
	return args
}

func parse(prefix string, equalChar rune, token string) Argument {
	rest, ok := gemsstringx.CutPrefix(token, prefix)
	if !ok {
		return Argument{Value: token}
	}

	name, value, _ := strings.Cut(rest, string(equalChar))
	if gemsstringx.IsBlank(name) {
		return Argument{Value: token}
	}
	return Argument{Name: strings.TrimSpace(name), Value: value}
}
