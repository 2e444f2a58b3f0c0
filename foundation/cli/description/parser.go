// File: parser.go
// Title: Pattern Grammar Parser
// Description: Compiles pattern tokens such as "[--count#=int]" into
//              Descriptions. Each token is stripped in a fixed order:
//              surrounding whitespace, scope brackets, role prefix,
//              multiplicity marker, then the name/type separator.
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

	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/cli/types"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

const multipleMarker = "#"

// Parser compiles pattern strings into descriptions
type Parser struct {
	registry *types.Registry
	logger   *gemslog.Logger
}

// Options configures a parser
type Options struct {
	Logger   *gemslog.Logger
	Registry *types.Registry
}

// NewParser creates a parser. The default type registry and logger are
// used unless given.
func NewParser(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = gemslog.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = types.Default()
	}
	return &Parser{
		registry: opts.Registry,
		logger:   opts.Logger.WithField("component", "description-parser"),
	}
}

// ParseAll parses a space separated pattern with the default parser
func ParseAll(opts options.CliOptions, provider help.Provider, pattern string) ([]Description, error) {
	return NewParser(Options{}).ParseAll(opts, provider, pattern)
}

// ParseOne parses a single token with the default parser
func ParseOne(opts options.CliOptions, provider help.Provider, token string) (Description, error) {
	return NewParser(Options{}).ParseOne(opts, provider, token)
}

// ParseAll splits pattern on single spaces and parses every non-blank
// token in order. A blank pattern yields an empty list. The first bad
// token fails the whole pattern.
func (p *Parser) ParseAll(opts options.CliOptions, provider help.Provider, pattern string) ([]Description, error) {
	descs := make([]Description, 0)
	for _, token := range strings.Split(pattern, " ") {
		if gemsstringx.IsBlank(token) {
			continue
		}
		desc, err := p.ParseOne(opts, provider, token)
		if err != nil {
			p.logger.Warn("pattern parsing failed",
				gemslog.Field("pattern", pattern).Merge(gemslog.Err(err)))
			return nil, err
		}
		descs = append(descs, desc)
	}

	p.logger.Debug("pattern parsed", gemslog.Fields{
		"pattern":      pattern,
		"descriptions": len(descs),
	})
	return descs, nil
}

// ParseOne parses a single pattern token
func (p *Parser) ParseOne(opts options.CliOptions, provider help.Provider, token string) (Description, error) {
	if gemsstringx.IsBlank(token) {
		return Description{}, syntaxError("pattern token is blank", token)
	}

	rest := strings.TrimSpace(token)

	scope := Required
	if inner, ok := gemsstringx.Unwrap(rest, "[", "]"); ok {
		scope = Optional
		rest = inner
	}

	role := Passed
	if inner, ok := gemsstringx.CutPrefix(rest, opts.Prefix); ok {
		role = Named
		rest = inner
	}

	multiplicity := Once
	if inner, ok := cutMultiple(rest, opts.EqualChar); ok {
		multiplicity = Multiple
		rest = inner
	}

	name, tag, hasType := strings.Cut(rest, string(opts.EqualChar))

	var paramType types.ParamType
	if hasType {
		resolved, err := p.registry.Resolve(strings.ToLower(tag))
		if err != nil {
			return Description{}, gemserror.Wrap(err, "cannot resolve parameter type").
				WithOperation("description.ParseOne").
				WithDetail("token", token)
		}
		paramType = resolved
	}
	if paramType == nil && role == Passed {
		paramType = types.String
	}

	if gemsstringx.IsBlank(name) {
		return Description{}, syntaxError("parameter name is missing", token)
	}

	if p.logger.IsLevelEnabled(gemslog.LevelTrace) {
		p.logger.Trace("token parsed", gemslog.Fields{
			"token": token,
			"name":  name,
			"role":  role.String(),
		})
	}

	return Description{
		Name:         name,
		Help:         help.OrNone(provider).Get(name),
		Role:         role,
		Type:         paramType,
		Scope:        scope,
		Multiplicity: multiplicity,
	}, nil
}

// cutMultiple strips the multiplicity marker from the end of s, or from
// the end of the name when the marker directly precedes the separator
func cutMultiple(s string, equalChar rune) (string, bool) {
	if inner, ok := strings.CutSuffix(s, multipleMarker); ok {
		return inner, true
	}
	name, tag, found := strings.Cut(s, string(equalChar))
	if !found {
		return s, false
	}
	if inner, ok := strings.CutSuffix(name, multipleMarker); ok {
		return inner + string(equalChar) + tag, true
	}
	return s, false
}

func syntaxError(message, token string) error {
	return gemserror.New(message).
		WithCode(gemserror.CodeDescriptionSyntax).
		WithOperation("description.ParseOne").
		WithDetail("token", token)
}

// IsSyntaxError reports whether err is a malformed token or an
// unresolvable type tag
func IsSyntaxError(err error) bool {
	return gemserror.HasCode(err, gemserror.CodeDescriptionSyntax) ||
		gemserror.HasCode(err, gemserror.CodeUnknownType)
}
