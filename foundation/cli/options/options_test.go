// File: options_test.go
// Title: Command-Line Style Options Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package options

import (
	"testing"

	gemserror "github.com/msto63/gemscli/foundation/core/error"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"windows", "/name:value"},
		{"UNIX", "--name=value"},
		{" dash ", "-name:value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Named(tt.name)
			if err != nil {
				t.Fatalf("Named(%q) error = %v", tt.name, err)
			}
			if got := opts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if err := opts.Validate(); err != nil {
				t.Errorf("preset %q invalid: %v", tt.name, err)
			}
		})
	}

	if _, err := Named("vms"); !gemserror.HasCode(err, gemserror.CodeNotFound) {
		t.Errorf("Named(vms) error = %v, want NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		equalChar rune
		wantErr   bool
	}{
		{"dash colon", "-", ':', false},
		{"double dash equals", "--", '=', false},
		{"blank prefix", "  ", ':', true},
		{"space in prefix", "- ", ':', true},
		{"zero separator", "-", 0, true},
		{"hash separator", "-", '#', true},
		{"separator in prefix", "-:", ':', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.prefix, tt.equalChar)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !gemserror.HasCode(err, gemserror.CodeInvalidConfig) {
				t.Errorf("New() code = %v, want INVALID_CONFIG", gemserror.GetCode(err))
			}
		})
	}
}

func TestNames(t *testing.T) {
	got := Names()
	want := []string{"dash", "unix", "windows"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
