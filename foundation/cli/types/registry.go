// File: registry.go
// Title: Parameter Type Registry
// Description: Thread-safe registry mapping lower-case type tags and their
//              aliases to ParamTypes. The pattern parser resolves type tags
//              through a registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package types

import (
	"sort"
	"strings"
	"sync"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
	"github.com/msto63/gemscli/foundation/core/log"
	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

// Options configures a registry
type Options struct {
	Logger *log.Logger

	// Empty skips the built-in types
	Empty bool
}

// Registry maps type tags to parameter types
type Registry struct {
	types  map[string]ParamType
	logger *log.Logger
	mutex  sync.RWMutex
}

var builtinAliases = map[string]string{
	"int32":   "int",
	"int64":   "int",
	"integer": "int",
	"float32": "float",
	"float64": "float",
	"double":  "float",
	"decimal": "float",
	"boolean": "bool",
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry holding the built-in types
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(Options{})
	})
	return defaultRegistry
}

// NewRegistry creates a registry, with the built-in types unless
// opts.Empty is set
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		types:  make(map[string]ParamType),
		logger: opts.Logger.WithField("component", "type-registry"),
	}

	if !opts.Empty {
		for _, t := range []ParamType{String, Int, Uint, Float, Bool, Duration, URL} {
			r.types[t.Name()] = t
		}
		for alias, tag := range builtinAliases {
			r.types[alias] = r.types[tag]
		}
	}
	return r
}

// Register adds a type under tag. Registering an existing tag is an error.
func (r *Registry) Register(tag string, t ParamType) error {
	if t == nil {
		return gemserror.New("parameter type cannot be nil").
			WithCode(gemserror.CodeInvalidInput).
			WithOperation("types.Register")
	}
	if gemsstringx.IsBlank(tag) {
		return gemserror.New("type tag cannot be empty").
			WithCode(gemserror.CodeInvalidInput).
			WithOperation("types.Register")
	}

	key := normalize(tag)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.types[key]; exists {
		return gemserror.Newf("type %s already registered", key).
			WithCode(gemserror.CodeInvalidInput).
			WithOperation("types.Register").
			WithDetail("tag", key)
	}
	r.types[key] = t

	r.logger.Debug("parameter type registered", log.Fields{
		"tag":  key,
		"type": t.Name(),
	})
	return nil
}

// Alias makes alias resolve to the type registered under tag
func (r *Registry) Alias(alias, tag string) error {
	t, err := r.Resolve(tag)
	if err != nil {
		return err
	}
	return r.Register(alias, t)
}

// Resolve returns the type for a tag. Tags are case-insensitive.
func (r *Registry) Resolve(tag string) (ParamType, error) {
	key := normalize(tag)

	r.mutex.RLock()
	t, ok := r.types[key]
	r.mutex.RUnlock()

	if !ok {
		return nil, gemserror.Newf("unknown parameter type %q", tag).
			WithCode(gemserror.CodeUnknownType).
			WithOperation("types.Resolve").
			WithDetail("tag", key)
	}
	return t, nil
}

// Has reports whether a tag is registered
func (r *Registry) Has(tag string) bool {
	_, err := r.Resolve(tag)
	return err == nil
}

// Tags returns all registered tags and aliases in sorted order
func (r *Registry) Tags() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tags := make([]string, 0, len(r.types))
	for tag := range r.types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
