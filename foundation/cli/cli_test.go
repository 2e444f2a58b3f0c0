// File: cli_test.go
// Title: Request Factory Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package cli

import (
	"io"
	"os"
	"testing"

	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
)

func TestMain(m *testing.M) {
	gemslog.SetDefault(gemslog.New().WithOutput(io.Discard))
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		opts  options.CliOptions
		raw   []string
		valid bool
	}{
		{"unix", options.UnixStyle, []string{"in.txt", "--level=3"}, true},
		{"unix missing", options.UnixStyle, []string{"--level=3"}, false},
		{"unix wrong style", options.UnixStyle, []string{"in.txt", "/level:3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.opts, help.None, "file [--level=int]", tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if req.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v (failures %v)", req.Valid(), tt.valid, req.Failures())
			}
		})
	}

	if _, err := Parse(options.UnixStyle, help.None, "--=int", nil); !description.IsSyntaxError(err) {
		t.Errorf("Parse() with bad pattern error = %v, want syntax error", err)
	}
}

func TestCreateUsesWindowsStyle(t *testing.T) {
	descs, err := description.ParseAll(options.WindowsStyle, help.None, "file /level:int")
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}

	req := Create([]string{"a.txt", "/level:2"}, descs)
	if !req.Valid() {
		t.Fatalf("Create() invalid: %v", req.Failures())
	}
	if arg, _ := req.First("level"); arg.Value != "2" {
		t.Errorf("First(level) = %+v", arg)
	}
}

func TestCreateRequestWithoutValidator(t *testing.T) {
	descs, err := description.ParseAll(options.DashStyle, help.None, "file")
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	req := CreateRequest(options.DashStyle, nil, []string{"x"}, descs)
	if req.Valid() {
		t.Error("an unvalidated request must not be valid")
	}
	if !req.Contains("file") {
		t.Error("arguments must still be matched")
	}
}

func TestUsage(t *testing.T) {
	pattern := "file [-verbose] [-count#:int] -label:string"
	descs, err := description.ParseAll(options.DashStyle, help.None, pattern)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if got := Usage(options.DashStyle, descs); got != pattern {
		t.Errorf("Usage() = %q, want %q", got, pattern)
	}
	if got := Usage(options.UnixStyle, descs); got != "file [--verbose] [--count#=int] --label=string" {
		t.Errorf("Usage() in unix style = %q", got)
	}
}
