// File: validator_test.go
// Title: Argument Validator Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package validator

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/msto63/gemscli/foundation/cli/argument"
	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/help"
	"github.com/msto63/gemscli/foundation/cli/options"
	"github.com/msto63/gemscli/foundation/cli/request"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
	"github.com/msto63/gemscli/foundation/core/validation"
)

func quiet() *gemslog.Logger {
	return gemslog.New().WithOutput(io.Discard)
}

func describe(t *testing.T, pattern string) []description.Description {
	t.Helper()
	p := description.NewParser(description.Options{Logger: quiet()})
	descs, err := p.ParseAll(options.DashStyle, help.None, pattern)
	if err != nil {
		t.Fatalf("ParseAll(%q) error = %v", pattern, err)
	}
	return descs
}

func TestValidate(t *testing.T) {
	const pattern = "count:int [-label:string] [-verbose] [-tag#] [files#]"

	tests := []struct {
		name  string
		args  []string
		valid bool
		codes []string
	}{
		{"minimal", []string{"5"}, true, nil},
		{"everything", []string{"5", "-label:x", "-verbose", "-tag", "-tag", "a", "b"}, true, nil},
		{"missing required", []string{"-label:hello"}, false, []string{validation.CodeRequired}},
		{"label twice", []string{"5", "-label:a", "-label:b"}, false, []string{validation.CodeMultiplicity}},
		{"bad int", []string{"five"}, false, []string{validation.CodeType}},
		{"flag with value", []string{"5", "-verbose:yes"}, false, []string{validation.CodeFlagValue}},
		{"unknown named", []string{"5", "-color:red"}, false, []string{validation.CodeUnknown}},
		{"several", []string{"x", "-verbose:1", "-zz"}, false,
			[]string{validation.CodeType, validation.CodeFlagValue, validation.CodeUnknown}},
	}

	descs := describe(t, pattern)
	v := New(Options{Logger: quiet()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request.New(argument.Create("-", ':', tt.args), descs)
			if got := v.Validate(descs, req); got != tt.valid {
				t.Fatalf("Validate() = %v, want %v (failures %v)", got, tt.valid, req.Failures())
			}
			if req.Valid() != tt.valid {
				t.Errorf("request validity = %v, want %v", req.Valid(), tt.valid)
			}
			failures := req.Failures()
			if len(failures) != len(tt.codes) {
				t.Fatalf("failures = %v, want codes %v", failures, tt.codes)
			}
			for i, code := range tt.codes {
				if failures[i].Code != code {
					t.Errorf("failure %d code = %s, want %s", i, failures[i].Code, code)
				}
			}
		})
	}
}

func TestSurplus(t *testing.T) {
	descs := describe(t, "source")
	req := request.New(argument.Create("-", ':', []string{"a", "b"}), descs)
	if New(Options{Logger: quiet()}).Validate(descs, req) {
		t.Fatal("surplus positional must fail validation")
	}
	if req.Failures()[0].Code != validation.CodeSurplus {
		t.Errorf("failures = %v", req.Failures())
	}
}

func TestStopOnFirstError(t *testing.T) {
	descs := describe(t, "count:int [-verbose]")
	req := request.New(argument.Create("-", ':', []string{"x", "-verbose:1", "-zz"}), descs)
	New(Options{Logger: quiet(), StopOnFirstError: true}).Validate(descs, req)
	if got := len(req.Failures()); got != 1 {
		t.Errorf("failures = %d, want 1", got)
	}
}

func TestCustomRuleAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := gemslog.New().WithOutput(&buf).WithLevel(gemslog.LevelDebug)

	descs := describe(t, "a:int b:int")
	v := New(Options{Logger: logger}).AddRule(validation.RuleFunc[Input](func(in Input) validation.Result {
		a, _ := in.Request.First("a")
		b, _ := in.Request.First("b")
		if a.Value == b.Value {
			return validation.Failed("VALIDATION_DISTINCT", "b", "a and b must differ", nil)
		}
		return validation.NewResult()
	}))

	ok := request.New(argument.Create("-", ':', []string{"1", "2"}), descs)
	if !v.Validate(descs, ok) {
		t.Errorf("Validate() failed: %v", ok.Failures())
	}
	if !strings.Contains(buf.String(), ok.ID()) {
		t.Errorf("log output should carry the request id, got %q", buf.String())
	}

	same := request.New(argument.Create("-", ':', []string{"1", "1"}), descs)
	if v.Validate(descs, same) {
		t.Error("custom rule should reject equal values")
	}
	if !strings.Contains(buf.String(), "argument validation failed") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}

	if v.Validate(descs, nil) {
		t.Error("nil request must not validate")
	}
}
