// File: help.go
// Title: Parameter Help Providers
// Description: Providers resolve the help text of a parameter by name. The
//              pattern parser asks its provider once per description.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package help

import (
	"strings"

	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

// Provider returns the help text for a parameter name, or "" if unknown
type Provider interface {
	Get(name string) string
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(name string) string

// Get implements Provider
func (f ProviderFunc) Get(name string) string {
	return f(name)
}

// None never has help text
var None Provider = ProviderFunc(func(string) string { return "" })

// Map is a Provider backed by a map with case-insensitive keys
type Map map[string]string

// NewMap copies entries into a Map with lower-cased keys
func NewMap(entries map[string]string) Map {
	m := make(Map, len(entries))
	for k, v := range entries {
		m[strings.ToLower(k)] = v
	}
	return m
}

// Get implements Provider. Keys match regardless of case, also in maps
// built without NewMap.
func (m Map) Get(name string) string {
	if v, ok := m[name]; ok {
		return v
	}
	if v, ok := m[strings.ToLower(name)]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Chain asks each provider in turn and returns the first non-blank text
type Chain []Provider

// Get implements Provider
func (c Chain) Get(name string) string {
	for _, p := range c {
		if p == nil {
			continue
		}
		if text := p.Get(name); gemsstringx.IsNotBlank(text) {
			return text
		}
	}
	return ""
}

// OrNone returns p, or None when p is nil
func OrNone(p Provider) Provider {
	if p == nil {
		return None
	}
	return p
}
