// File: fault_test.go
// Title: Fault Module Tests
// Description: Tests for error creation, wrapping, codes, severity defaults
//              and standard library interop.

package fault

import (
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

	file, line, function := err.Source()
	if !strings.HasSuffix(file, "fault_test.go") {
		t.Errorf("Source() file = %q, want fault_test.go", file)
	}
	if line == 0 {
		t.Error("Source() line should not be zero")
	}
	if !strings.Contains(function, "TestNew") {
		t.Errorf("Source() function = %q, want it to contain TestNew", function)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("position %d out of bounds", 42)
	if err.Error() != "position 42 out of bounds" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap fault error",
			err:     New("original fault").WithCode(CodeOutOfRange),
			message: "wrapper message",
			wantMsg: "wrapper message: original fault",
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

			// Fault error properties must be preserved on the wrapper
			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
			}
		})
	}
}

func TestUnwrapChain(t *testing.T) {
	root := errors.New("root cause")
	mid := Wrap(root, "mid layer")
	top := Wrap(mid, "top layer")

	if !errors.Is(top, root) {
		t.Error("errors.Is(top, root) = false, want true")
	}

	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
}

func TestWithCodeSetsDefaultSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeOutOfRange, SeverityLow},
		{CodeInvalidSize, SeverityLow},
		{CodeNilPointer, SeverityHigh},
		{CodeClosed, SeverityMedium},
		{CodeConfig, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithSeverityExplicitWins(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeOutOfRange)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("x").WithDetail("position", 7).WithDetail("size", 3)

	details := err.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d, want 2", len(details))
	}
	if details["position"] != 7 {
		t.Errorf("details[position] = %v, want 7", details["position"])
	}

	// Details() must return a copy
	details["position"] = 99
	if err.Details()["position"] != 7 {
		t.Error("Details() did not return a copy")
	}
}

func TestHasCode(t *testing.T) {
	err := New("x").WithCode(CodeInvalidSize)
	wrapped := fmt.Errorf("outer: %w", err)

	if !HasCode(wrapped, CodeInvalidSize) {
		t.Error("HasCode() through fmt.Errorf wrapper = false, want true")
	}
	if HasCode(wrapped, CodeOutOfRange) {
		t.Error("HasCode() with different code = true, want false")
	}
	if HasCode(errors.New("plain"), CodeInvalidSize) {
		t.Error("HasCode() on plain error = true, want false")
	}
}

func TestCodeOfAndSeverityOf(t *testing.T) {
	if CodeOf(errors.New("plain")) != CodeUnknown {
		t.Error("CodeOf(plain) != CodeUnknown")
	}
	if SeverityOf(errors.New("plain")) != SeverityMedium {
		t.Error("SeverityOf(plain) != SeverityMedium")
	}

	err := New("x").WithCode(CodeIO)
	if CodeOf(err) != CodeIO {
		t.Errorf("CodeOf() = %v, want %v", CodeOf(err), CodeIO)
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeNilPointer).WithDetail("arg", "data")
	s := err.String()

	for _, want := range []string{"error: boom", "code: nil_pointer", "severity: high", "raised at:", "arg=data"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestShouldAlert(t *testing.T) {
	if SeverityMedium.ShouldAlert() {
		t.Error("medium should not alert")
	}
	if !SeverityHigh.ShouldAlert() {
		t.Error("high should alert")
	}
	if !SeverityCritical.ShouldAlert() {
		t.Error("critical should alert")
	}
}

func TestCodeString(t *testing.T) {
	if CodeOutOfRange.String() != "out_of_range" {
		t.Errorf("CodeOutOfRange.String() = %q", CodeOutOfRange.String())
	}
	if Code(999).String() != "unknown" {
		t.Errorf("Code(999).String() = %q", Code(999).String())
	}
}
