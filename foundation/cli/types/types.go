// File: types.go
// Title: Parameter Types
// Description: Defines ParamType, the contract for typed parameter values,
//              and the built-in types every registry starts with.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package types

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// ParamType describes the type of a parameter value
type ParamType interface {
	// Name returns the canonical lower-case tag of the type
	Name() string

	// Valid reports whether value can be converted
	Valid(value string) bool

	// Convert converts value to the Go representation of the type
	Convert(value string) (any, error)
}

// ConvertFunc converts a raw argument value
type ConvertFunc func(value string) (any, error)

type definedType struct {
	name    string
	convert ConvertFunc
}

// Define creates a ParamType from a name and a conversion function.
// Conversion errors are wrapped with CodeInvalidInput.
func Define(name string, convert ConvertFunc) ParamType {
	return &definedType{name: strings.ToLower(strings.TrimSpace(name)), convert: convert}
}

func (t *definedType) Name() string {
	return t.name
}

func (t *definedType) Valid(value string) bool {
	_, err := t.convert(value)
	return err == nil
}

func (t *definedType) Convert(value string) (any, error) {
	v, err := t.convert(value)
	if err != nil {
		return nil, gemserror.Wrap(err, "invalid "+t.name+" value").
			WithCode(gemserror.CodeInvalidInput).
			WithOperation("types.Convert").
			WithDetail("type", t.name).
			WithDetail("value", value)
	}
	return v, nil
}

func (t *definedType) String() string {
	return t.name
}

// Built-in types
var (
	String = Define("string", func(v string) (any, error) {
		return v, nil
	})

	Int = Define("int", func(v string) (any, error) {
		return strconv.Atoi(strings.TrimSpace(v))
	})

	Uint = Define("uint", func(v string) (any, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 0)
		return uint(n), err
	})

	Float = Define("float", func(v string) (any, error) {
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	})

	Bool = Define("bool", func(v string) (any, error) {
		return strconv.ParseBool(strings.TrimSpace(v))
	})

	Duration = Define("duration", func(v string) (any, error) {
		return time.ParseDuration(strings.TrimSpace(v))
	})

	URL = Define("url", func(v string) (any, error) {
		u, err := url.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, gemserror.Newf("url %q needs a scheme and a host", v)
		}
		return u, nil
	})
)

// Enum creates a type accepting only the given values, compared
// case-insensitively. Convert returns the value as listed.
func Enum(name string, values ...string) ParamType {
	return Define(name, func(v string) (any, error) {
		for _, allowed := range values {
			if strings.EqualFold(allowed, strings.TrimSpace(v)) {
				return allowed, nil
			}
		}
		return nil, gemserror.Newf("%q is not one of %s", v, strings.Join(values, ", "))
	})
}
