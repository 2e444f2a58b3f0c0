// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and exposes command-line style presets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Style presets

/*
Package config provides configuration loading for gemscli.

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable overrides
  • Command-line style presets validated on access
  • Discovery of gemscli.toml / gemscli.yaml in the usual places

Preset files list one table per style:

	default = "unix"

	[unix]
	prefix = "--"
	equal_char = "="

	[vms]
	prefix = "/"
	equal_char = "="

With an EnvPrefix of GEMSCLI, the variables GEMSCLI_UNIX_PREFIX and
GEMSCLI_UNIX_EQUAL_CHAR override the values of the unix table.

	cfg, err := config.LoadWithOptions("gemscli.toml", config.LoadOptions{EnvPrefix: "GEMSCLI"})
	if err != nil {
		return err
	}
	opts, err := cfg.Preset("")  // the default preset
*/
package config
