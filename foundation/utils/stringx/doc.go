// File: doc.go
// Title: String Utilities Package Documentation
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

// Package stringx holds the string helpers the gemscli packages share:
// blank checks and the affix stripping used by the pattern grammar.
package stringx
