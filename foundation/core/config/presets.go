// File: presets.go
// Title: Command-Line Style Presets
// Description: Reads CliOptions presets from configuration. Each top-level
//              table is a preset with a prefix and an equal_char; the
//              optional top-level key "default" names the preset to use
//              when none is requested.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/gemscli/foundation/cli/options"
	gemserror "github.com/msto63/gemscli/foundation/core/error"
	"github.com/msto63/gemscli/foundation/core/validation"
	gemsstringx "github.com/msto63/gemscli/foundation/utils/stringx"
)

const (
	keyDefault   = "default"
	keyPrefix    = "prefix"
	keyEqualChar = "equal_char"
)

// rawPreset is a preset as read from the file, before conversion
type rawPreset struct {
	name      string
	prefix    string
	equalChar string
}

var presetRules = validation.NewChain[rawPreset]("preset").
	AddFunc(func(p rawPreset) validation.Result {
		if gemsstringx.IsBlank(p.prefix) {
			return validation.Failed(validation.CodeRequired, p.name+"."+keyPrefix,
				"preset "+p.name+": prefix is required", p.prefix)
		}
		return validation.NewResult()
	}).
	AddFunc(func(p rawPreset) validation.Result {
		if utf8.RuneCountInString(p.equalChar) != 1 {
			return validation.Failed(validation.CodeType, p.name+"."+keyEqualChar,
				"preset "+p.name+": equal_char must be exactly one character", p.equalChar)
		}
		return validation.NewResult()
	}).
	AddFunc(func(p rawPreset) validation.Result {
		if p.equalChar != "" && strings.Contains(p.prefix, p.equalChar) {
			return validation.Failed(validation.CodeType, p.name+"."+keyEqualChar,
				"preset "+p.name+": equal_char must not occur in prefix", p.equalChar)
		}
		return validation.NewResult()
	})

// Names returns the sorted names of the presets defined in the config
func (c *Config) Names() []string {
	return c.Sections()
}

// DefaultPreset returns the name stored under the top-level "default" key,
// or an empty string
func (c *Config) DefaultPreset() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.getValue(keyDefault).(string); ok {
		return strings.TrimSpace(name)
	}
	return ""
}

// Preset returns the named preset. A blank name selects the default preset.
// Names not defined in the config fall back to the built-in styles.
func (c *Config) Preset(name string) (options.CliOptions, error) {
	name = strings.ToLower(strings.TrimSpace(gemsstringx.FirstNonBlank(name, c.DefaultPreset())))
	if name == "" {
		return options.CliOptions{}, gemserror.New("no preset requested and no default configured").
			WithCode(gemserror.CodeNotFound).
			WithOperation("config.Preset")
	}

	if !c.hasSection(name) {
		opts, err := options.Named(name)
		if err != nil {
			return options.CliOptions{}, gemserror.Wrap(err, "preset not found").
				WithOperation("config.Preset").
				WithDetail("preset", name)
		}
		return opts, nil
	}

	raw := c.rawPreset(name)
	if err := presetRules.Validate(raw).ToError(); err != nil {
		return options.CliOptions{}, gemserror.Wrap(err, "invalid preset").
			WithCode(gemserror.CodeInvalidConfig).
			WithSeverity(gemserror.SeverityHigh).
			WithOperation("config.Preset").
			WithDetail("preset", name)
	}

	equalChar, _ := utf8.DecodeRuneInString(raw.equalChar)
	opts, err := options.New(raw.prefix, equalChar)
	if err != nil {
		return options.CliOptions{}, gemserror.Wrap(err, "invalid preset").
			WithOperation("config.Preset").
			WithDetail("preset", name)
	}
	return opts, nil
}

// Validate checks every preset defined in the config
func (c *Config) Validate() validation.Result {
	results := make([]validation.Result, 0)
	for _, name := range c.Names() {
		results = append(results, presetRules.Validate(c.rawPreset(name)))
	}
	return validation.Combine(results...)
}

func (c *Config) hasSection(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.data[name].(map[string]interface{})
	return ok
}

func (c *Config) rawPreset(name string) rawPreset {
	return rawPreset{
		name:      name,
		prefix:    c.GetString(name + "." + keyPrefix),
		equalChar: c.GetString(name + "." + keyEqualChar),
	}
}
