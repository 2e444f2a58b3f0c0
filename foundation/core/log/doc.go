// Package log provides structured logging for gemscli.
//
// Package: log
// Title: gemscli Structured Logging
// Description: Leveled, structured logging with JSON, text and console
//              output. Engine components accept an optional *Logger and
//              fall back to GetDefault() tagged with their component name.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Reduced to what the description engine and the CLI need
//
// Usage:
//
//	import gemslog "github.com/msto63/gemscli/foundation/core/log"
//
//	logger := gemslog.NewWithConfig(gemslog.Config{
//		Level:  gemslog.LevelDebug,
//		Format: gemslog.FormatConsole,
//	}).WithName("gemscli.describe")
//
//	logger.Debug("pattern parsed", gemslog.Fields{"count": 3})
//	logger.LogError(err)
package log
