// File: bind.go
// Title: Schema Binding
// Description: Populates a new instance of a schema's target type from raw
//              command-line arguments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package schema

import (
	"github.com/msto63/gemscli/foundation/cli"
	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/options"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
)

// Bind derives the pattern of s, matches raw against it and, when the
// arguments are valid, returns a new T with every matched field assigned.
//
// Invalid arguments are not an error: Bind returns nil, nil and the caller
// reports the problem. An error means the schema does not fit the style,
// the pattern did not parse or a conversion failed.
// Parameters that may repeat are validated as such, but only their first
// value is assigned.
func Bind[T any](opts options.CliOptions, s *Schema[T], raw []string) (*T, error) {
	parser := description.NewParser(description.Options{
		Logger:   s.logger,
		Registry: s.registry,
	})

	if err := s.checkStyle(opts); err != nil {
		return nil, err
	}

	pattern := DeriveSyntax(opts, s)
	descs, err := parser.ParseAll(opts, s.help, pattern)
	if err != nil {
		return nil, gemserror.Wrap(err, "schema pattern does not parse").
			WithOperation("schema.Bind").
			WithDetail("pattern", pattern)
	}

	req := cli.CreateRequest(opts, s.validator, raw, descs)
	logger := s.logger.WithRequestID(req.ID())
	if !req.Valid() {
		logger.Info("arguments do not match schema", gemslog.Fields{
			"schema":   s.name,
			"failures": len(req.Failures()),
		})
		return nil, nil
	}

	instance := new(T)
	for _, d := range descs {
		if !req.Contains(d.Name) {
			continue
		}
		f := s.field(d.Name)
		if f == nil {
			continue
		}
		arg, _ := req.First(d.Name)
		if err := assign(instance, f, d, arg.Value); err != nil {
			logger.ErrorWithErr("schema binding failed", err,
				gemslog.Field("schema", s.name).Merge(gemslog.Field("parameter", d.Name)))
			return nil, err
		}
	}

	logger.Debug("schema bound", gemslog.Fields{
		"schema":    s.name,
		"arguments": len(req.Arguments()),
	})
	return instance, nil
}

func assign[T any](instance *T, f *Field[T], d description.Description, raw string) error {
	if d.Type == nil {
		return gemserror.Newf("parameter %s has no type", d.Name).
			WithCode(gemserror.CodeBindingFailed).
			WithOperation("schema.Bind").
			WithDetail("field", f.id)
	}

	value, err := d.Type.Convert(raw)
	if err != nil {
		return gemserror.Wrap(err, "cannot convert value for field "+f.id).
			WithCode(gemserror.CodeBindingFailed).
			WithSeverity(gemserror.SeverityCritical).
			WithOperation("schema.Bind").
			WithDetail("field", f.id)
	}

	if err := f.assign(instance, value); err != nil {
		return gemserror.Wrap(err, "cannot assign field "+f.id).
			WithOperation("schema.Bind")
	}
	return nil
}
