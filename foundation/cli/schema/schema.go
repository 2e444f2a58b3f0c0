// File: schema.go
// Title: Schemas
// Description: A Schema is the explicit descriptor list of a target type,
//              built once and used both to derive a pattern and to assign
//              bound values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package schema

import (
	"strings"

	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/cli/types"
	"github.com/msto63/gemscli/foundation/cli/validator"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

// Scoper is implemented by help providers that hold texts per scope, such
// as *help.Catalog
type Scoper interface {
	Scope(name string) help.Provider
}

// Options configures a schema
type Options struct {
	// Name is the help scope of the schema
	Name string

	// Help supplies texts for parameters without field help. A Scoper is
	// narrowed to Name.
	Help help.Provider

	Registry  *types.Registry
	Validator validator.Validator
	Logger    *gemslog.Logger
}

// Schema describes the bindable fields of T
type Schema[T any] struct {
	name      string
	fields    []*Field[T]
	help      help.Provider
	registry  *types.Registry
	validator validator.Validator
	logger    *gemslog.Logger
}

// New creates a schema with default options
func New[T any](fields ...*Field[T]) (*Schema[T], error) {
	return NewWithOptions(Options{}, fields...)
}

// MustNew is like New but panics on an invalid schema
func MustNew[T any](fields ...*Field[T]) *Schema[T] {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithOptions creates a schema. Fields must have distinct identifiers
// and parameter names, a setter, and a type tag known to the registry.
func NewWithOptions[T any](opts Options, fields ...*Field[T]) (*Schema[T], error) {
	if opts.Logger == nil {
		opts.Logger = gemslog.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = types.Default()
	}

	s := &Schema[T]{
		name:      strings.TrimSpace(opts.Name),
		fields:    append([]*Field[T](nil), fields...),
		registry:  opts.Registry,
		validator: opts.Validator,
		logger:    opts.Logger.WithField("component", "schema"),
	}
	if s.validator == nil {
		s.validator = validator.New(validator.Options{Logger: opts.Logger})
	}

	fieldHelp := help.Map{}
	ids := make(map[string]bool, len(fields))
	names := make(map[string]bool, len(fields))
	for _, f := range s.fields {
		if err := s.check(f, ids, names); err != nil {
			return nil, err
		}
		if gemsstringx.IsNotBlank(f.help) {
			fieldHelp[strings.ToLower(f.ParamName())] = f.help
		}
	}

	scoped := opts.Help
	if scoper, ok := opts.Help.(Scoper); ok {
		scoped = scoper.Scope(s.name)
	}
	s.help = help.Chain{fieldHelp, scoped}

	s.logger.Debug("schema registered", gemslog.Fields{
		"name":   s.name,
		"fields": len(s.fields),
	})
	return s, nil
}

func (s *Schema[T]) check(f *Field[T], ids, names map[string]bool) error {
	fail := func(message string) error {
		err := gemserror.New(message).
			WithCode(gemserror.CodeSchemaInvalid).
			WithOperation("schema.New")
		if f != nil {
			err = err.WithDetail("field", f.id)
		}
		return err
	}

	switch {
	case f == nil:
		return fail("field cannot be nil")
	case f.id == "":
		return fail("field identifier cannot be empty")
	case f.assign == nil:
		return fail("field " + f.id + " has no setter")
	case strings.ContainsAny(f.ParamName(), " \t#[]"):
		return fail("field " + f.id + " has an unusable parameter name " + f.ParamName())
	case ids[strings.ToLower(f.id)]:
		return fail("duplicate field " + f.id)
	case names[strings.ToLower(f.ParamName())]:
		return fail("duplicate parameter name " + f.ParamName())
	}

	if _, err := s.registry.Resolve(f.typeName); err != nil {
		return gemserror.Wrap(err, "field "+f.id+" has an unsupported type").
			WithCode(gemserror.CodeSchemaInvalid).
			WithOperation("schema.New").
			WithDetail("field", f.id)
	}

	ids[strings.ToLower(f.id)] = true
	names[strings.ToLower(f.ParamName())] = true
	return nil
}

// checkStyle rejects parameter names that the style would read differently:
// names containing the separator, and positional names starting with the
// prefix
func (s *Schema[T]) checkStyle(opts options.CliOptions) error {
	for _, f := range s.fields {
		name := f.ParamName()
		var reason string
		switch {
		case strings.ContainsRune(name, opts.EqualChar):
			reason = "contains the separator " + string(opts.EqualChar)
		case f.role == description.Passed && opts.Prefix != "" && strings.HasPrefix(name, opts.Prefix):
			reason = "starts with the prefix " + opts.Prefix
		default:
			continue
		}
		return gemserror.Newf("parameter name %s of field %s %s", name, f.id, reason).
			WithCode(gemserror.CodeSchemaInvalid).
			WithOperation("schema.Bind").
			WithDetail("field", f.id).
			WithDetail("style", opts.String())
	}
	return nil
}

// Name returns the help scope of the schema
func (s *Schema[T]) Name() string {
	return s.name
}

// Fields returns the field descriptors in declaration order
func (s *Schema[T]) Fields() []*Field[T] {
	return append([]*Field[T](nil), s.fields...)
}

// Help returns the help provider used when parsing the derived pattern
func (s *Schema[T]) Help() help.Provider {
	return s.help
}

// field finds the field for a parameter name, trying parameter names
// before identifiers
func (s *Schema[T]) field(name string) *Field[T] {
	for _, f := range s.fields {
		if strings.EqualFold(f.ParamName(), name) {
			return f
		}
	}
	for _, f := range s.fields {
		if strings.EqualFold(f.id, name) {
			return f
		}
	}
	return nil
}

// DeriveSyntax renders the schema as a pattern: one token per field,
// "<prefix if named><name><separator><type>", joined by single spaces
func DeriveSyntax[T any](opts options.CliOptions, s *Schema[T]) string {
	tokens := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		var b strings.Builder
		if f.role == description.Named {
			b.WriteString(opts.Prefix)
		}
		b.WriteString(f.ParamName())
		b.WriteRune(opts.EqualChar)
		b.WriteString(f.typeName)
		tokens = append(tokens, b.String())
	}
	return strings.Join(tokens, " ")
}
