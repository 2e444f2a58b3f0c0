// File: stringx_test.go
// Title: String Utility Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" ", true},
		{"a", false},
		{"  a  ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := IsNotBlank(tt.input); got == tt.want {
			t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
		}
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "help", "other"); got != "help" {
		t.Errorf("FirstNonBlank() = %q, want help", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
	if got := FromBlankDefault(" ", "fallback"); got != "fallback" {
		t.Errorf("FromBlankDefault() = %q, want fallback", got)
	}
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"[--count]", "--count", true},
		{"[]", "", true},
		{"[", "[", false},
		{"]", "]", false},
		{"[--count", "[--count", false},
		{"count]", "count]", false},
	}
	for _, tt := range tests {
		got, ok := Unwrap(tt.input, "[", "]")
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Unwrap(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCutPrefix(t *testing.T) {
	if got, ok := CutPrefix("--verbose", "--"); !ok || got != "verbose" {
		t.Errorf("CutPrefix() = %q, %v", got, ok)
	}
	if got, ok := CutPrefix("verbose", ""); ok || got != "verbose" {
		t.Errorf("CutPrefix with empty prefix = %q, %v", got, ok)
	}
}
