// File: catalog.go
// Title: Help Catalogs
// Description: Help texts loaded from TOML or YAML files. Each table is a
//              scope (usually a command or schema name); the "default"
//              table and top-level string keys apply to every scope.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/gemscli/foundation/core/config"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// DefaultScope is the table consulted for every scope
const DefaultScope = "default"

// Catalog holds help texts grouped by scope
type Catalog struct {
	scopes map[string]Map
}

// LoadCatalog reads a catalog file; the format follows the file extension
func LoadCatalog(path string) (*Catalog, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, gemserror.Wrap(err, "failed to load help catalog").
			WithOperation("help.LoadCatalog").
			WithDetail("path", path)
	}
	return newCatalog(cfg.GetAll()), nil
}

// ParseCatalog reads a catalog from a string
func ParseCatalog(content string, format config.Format) (*Catalog, error) {
	cfg, err := config.LoadFromString(content, format)
	if err != nil {
		return nil, gemserror.Wrap(err, "failed to parse help catalog").
			WithOperation("help.ParseCatalog")
	}
	return newCatalog(cfg.GetAll()), nil
}

func newCatalog(data map[string]interface{}) *Catalog {
	c := &Catalog{scopes: map[string]Map{DefaultScope: {}}}
	for key, value := range data {
		switch v := value.(type) {
		case map[string]interface{}:
			scope := strings.ToLower(key)
			m, ok := c.scopes[scope]
			if !ok {
				m = Map{}
				c.scopes[scope] = m
			}
			for name, text := range v {
				m[strings.ToLower(name)] = fmt.Sprint(text)
			}
		default:
			c.scopes[DefaultScope][strings.ToLower(key)] = fmt.Sprint(v)
		}
	}
	return c
}

// Get implements Provider using the default scope
func (c *Catalog) Get(name string) string {
	return c.scopes[DefaultScope].Get(name)
}

// Scope returns a provider that looks in the named scope first and falls
// back to the default scope
func (c *Catalog) Scope(name string) Provider {
	scoped, ok := c.scopes[strings.ToLower(name)]
	if !ok {
		return c.scopes[DefaultScope]
	}
	return Chain{scoped, c.scopes[DefaultScope]}
}

// Scopes returns the sorted scope names, including the default scope
func (c *Catalog) Scopes() []string {
	names := make([]string, 0, len(c.scopes))
	for name := range c.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
