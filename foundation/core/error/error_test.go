// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Tests for description engine codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("no name").WithCode(CodeDescriptionSyntax),
			message:  "parse pattern",
			wantMsg:  "parse pattern: no name",
			wantCode: CodeDescriptionSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", wrapped.Message(), tt.message)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad tag").WithCode(CodeUnknownType).WithDetail("tag", "vector")
	outer := Wrap(inner, "parse token")

	if v, ok := outer.Detail("tag"); !ok || v != "vector" {
		t.Errorf("Detail(tag) = %v, %v; want vector, true", v, ok)
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}
	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeInternal)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if chainDepth(e) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want at most %d", chainDepth(e), MaxErrorChainDepth+1)
	}
	if e.Code() != CodeInternal {
		t.Errorf("Code() = %v, want %v", e.Code(), CodeInternal)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeDescriptionSyntax, SeverityHigh},
		{CodeUnknownType, SeverityHigh},
		{CodeBindingFailed, SeverityCritical},
		{CodeValidationFailed, SeverityLow},
		{Code("SOMETHING_ELSE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithSeverityWins(t *testing.T) {
	err := New("test").WithSeverity(SeverityLow).WithCode(CodeBindingFailed)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestShouldAlert(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeValidationFailed, false},
		{CodeUnknown, false},
		{CodeSchemaInvalid, true},
		{CodeBindingFailed, true},
	}
	for _, tt := range tests {
		if got := New("x").WithCode(tt.code).Severity().ShouldAlert(); got != tt.want {
			t.Errorf("ShouldAlert() for %s = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHasCode(t *testing.T) {
	inner := New("blank").WithCode(CodeDescriptionSyntax)
	wrapped := fmt.Errorf("while parsing: %w", inner)

	if !HasCode(wrapped, CodeDescriptionSyntax) {
		t.Error("HasCode() should see the code through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, CodeUnknownType) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if HasCode(nil, CodeDescriptionSyntax) {
		t.Error("HasCode(nil) should be false")
	}
	if GetCode(wrapped) != CodeDescriptionSyntax {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeDescriptionSyntax)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", GetCode(errors.New("plain")), CodeUnknown)
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeDescriptionSyntax: "syntax",
		CodeUnknownType:       "syntax",
		CodeBindingFailed:     "binding",
		CodeInvalidConfig:     "configuration",
		CodeValidationFailed:  "validation",
		CodeInternal:          "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestString(t *testing.T) {
	err := New("no name").
		WithCode(CodeDescriptionSyntax).
		WithOperation("description.ParseOne").
		WithDetail("pattern", "--=int")

	s := err.String()
	for _, want := range []string{"Error: no name", "Code: DESCRIPTION_SYNTAX", "Operation: description.ParseOne", "pattern=--=int"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("strconv failure"), "bind field").
		WithCode(CodeBindingFailed).
		WithDetail("field", "Count")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["code"] != string(CodeBindingFailed) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeBindingFailed)
	}
	if decoded["cause"] != "strconv failure" {
		t.Errorf("cause = %v, want strconv failure", decoded["cause"])
	}
	if decoded["severity"] != "critical" {
		t.Errorf("severity = %v, want critical", decoded["severity"])
	}
}
