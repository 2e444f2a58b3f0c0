// File: field.go
// Title: Schema Fields
// Description: Typed field descriptors. A field couples an identifier, the
//              static type tag of the target, a setter and an optional
//              name/role override.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package schema

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/msto63/gemscli/foundation/cli/description"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// Field describes one settable member of T
type Field[T any] struct {
	id       string
	typeName string
	role     description.Role
	name     string
	help     string
	assign   func(dst *T, value any) error
}

// Value creates a field whose converted value must be of type V. typeName
// is the tag the value is converted with, usually the lower-case name of V.
func Value[T, V any](id, typeName string, set func(dst *T, value V)) *Field[T] {
	f := &Field[T]{
		id:       strings.TrimSpace(id),
		typeName: strings.ToLower(strings.TrimSpace(typeName)),
		role:     description.Passed,
	}
	if set != nil {
		f.assign = func(dst *T, value any) error {
			typed, ok := value.(V)
			if !ok {
				var want V
				return gemserror.Newf("field %s expects %T, got %T", f.id, want, value).
					WithCode(gemserror.CodeBindingFailed).
					WithOperation("schema.assign").
					WithDetail("field", f.id)
			}
			set(dst, typed)
			return nil
		}
	}
	return f
}

// String creates a string field
func String[T any](id string, set func(*T, string)) *Field[T] {
	return Value(id, "string", set)
}

// Int creates an int field
func Int[T any](id string, set func(*T, int)) *Field[T] {
	return Value(id, "int", set)
}

// Uint creates a uint field
func Uint[T any](id string, set func(*T, uint)) *Field[T] {
	return Value(id, "uint", set)
}

// Float creates a float64 field
func Float[T any](id string, set func(*T, float64)) *Field[T] {
	return Value(id, "float64", set)
}

// Bool creates a bool field. The parameter is typed, so a named bool
// expects a value such as -debug:true.
func Bool[T any](id string, set func(*T, bool)) *Field[T] {
	return Value(id, "bool", set)
}

// Duration creates a time.Duration field
func Duration[T any](id string, set func(*T, time.Duration)) *Field[T] {
	return Value(id, "duration", set)
}

// URL creates a *url.URL field
func URL[T any](id string, set func(*T, *url.URL)) *Field[T] {
	return Value(id, "url", set)
}

// Named makes the field a named parameter. A non-blank name replaces the
// default name.
func (f *Field[T]) Named(name string) *Field[T] {
	f.role = description.Named
	f.name = strings.TrimSpace(name)
	return f
}

// Passed makes the field a positional parameter. A non-blank name replaces
// the default name.
func (f *Field[T]) Passed(name string) *Field[T] {
	f.role = description.Passed
	f.name = strings.TrimSpace(name)
	return f
}

// WithHelp sets the help text of the field
func (f *Field[T]) WithHelp(text string) *Field[T] {
	f.help = text
	return f
}

// ID returns the field identifier
func (f *Field[T]) ID() string {
	return f.id
}

// TypeName returns the type tag of the field
func (f *Field[T]) TypeName() string {
	return f.typeName
}

// Role returns the parameter role of the field
func (f *Field[T]) Role() description.Role {
	return f.role
}

// ParamName returns the parameter name: the override, or the lower-cased
// identifier
func (f *Field[T]) ParamName() string {
	if f.name != "" {
		return f.name
	}
	return strings.ToLower(f.id)
}

func (f *Field[T]) String() string {
	return fmt.Sprintf("%s(%s %s)", f.id, f.role, f.typeName)
}
