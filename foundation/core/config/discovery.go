// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a preset file in the usual places when no explicit
//              path is given.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of config discovery
// - 2026-10-18 v0.2.0: gemscli search paths, env-only loading removed

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for gemscli.toml, gemscli.yaml or gemscli.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "gemscli"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"gemscli"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "GEMSCLI",
	}
}

// Discover finds and loads the first existing config file. When nothing is
// found and the file is not required, an empty config is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"gemscli"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if err != nil {
			return nil, gemserror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		return nil, gemserror.New(fmt.Sprintf("no configuration file found in paths: %s",
			strings.Join(ListPossibleConfigFiles(options), ", "))).
			WithCode(gemserror.CodeNotFound).
			WithOperation("config.Discover")
	}

	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: options.EnvPrefix,
	}, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", gemserror.New("configuration file not found").
		WithCode(gemserror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
