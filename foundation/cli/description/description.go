// File: description.go
// Title: Parameter Descriptions
// Description: Defines Description, the parsed form of one pattern token,
//              with its independent scope, role and multiplicity flags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package description

import (
	"strings"

	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/cli/types"
)

// Scope tells whether a parameter must be given
type Scope int

const (
	Required Scope = iota
	Optional
)

func (s Scope) String() string {
	if s == Optional {
		return "optional"
	}
	return "required"
}

// Role tells how a parameter is matched
type Role int

const (
	// Passed parameters are matched by position
	Passed Role = iota

	// Named parameters are matched by a prefixed name
	Named
)

func (r Role) String() string {
	if r == Named {
		return "named"
	}
	return "passed"
}

// Multiplicity tells how often a parameter may appear
type Multiplicity int

const (
	Once Multiplicity = iota
	Multiple
)

func (m Multiplicity) String() string {
	if m == Multiple {
		return "multiple"
	}
	return "once"
}

// Description is the parsed form of one pattern token. A nil Type marks a
// named flag that takes no value.
type Description struct {
	Name         string
	Help         string
	Role         Role
	Type         types.ParamType
	Scope        Scope
	Multiplicity Multiplicity
}

// IsFlag reports whether the description is an untyped named parameter
func (d Description) IsFlag() bool {
	return d.Type == nil
}

// TypeName returns the type tag, or "" for flags
func (d Description) TypeName() string {
	if d.Type == nil {
		return ""
	}
	return d.Type.Name()
}

// Matches compares names case-insensitively
func (d Description) Matches(name string) bool {
	return strings.EqualFold(d.Name, name)
}

// Token renders the description as a pattern token that parses back to an
// equal description. Positional string types are left implicit.
func (d Description) Token(opts options.CliOptions) string {
	var b strings.Builder
	if d.Scope == Optional {
		b.WriteByte('[')
	}
	if d.Role == Named {
		b.WriteString(opts.Prefix)
	}
	b.WriteString(d.Name)
	if d.Multiplicity == Multiple {
		b.WriteByte('#')
	}
	if tag := d.TypeName(); tag != "" && !(d.Role == Passed && tag == types.String.Name()) {
		b.WriteRune(opts.EqualChar)
		b.WriteString(tag)
	}
	if d.Scope == Optional {
		b.WriteByte(']')
	}
	return b.String()
}

// Pattern renders descriptions as a pattern string
func Pattern(opts options.CliOptions, descs []Description) string {
	tokens := make([]string, len(descs))
	for i, d := range descs {
		tokens[i] = d.Token(opts)
	}
	return strings.Join(tokens, " ")
}

// Find returns the first description matching name
func Find(descs []Description, name string) (Description, bool) {
	for _, d := range descs {
		if d.Matches(name) {
			return d, true
		}
	}
	return Description{}, false
}
