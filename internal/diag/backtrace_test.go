package diag

import (
	"strings"
	"testing"
)

func TestCaptureBacktrace(t *testing.T) {
	bt := CaptureBacktrace(0)
	if len(bt.Frames) == 0 {
		t.Fatal("capture must record at least one frame")
	}
	if !strings.Contains(bt.Frames[0].Function, "TestCaptureBacktrace") {
		t.Fatalf("innermost frame = %q, want the caller", bt.Frames[0].Function)
	}
	s := bt.String()
	if !strings.Contains(s, "TestCaptureBacktrace") || !strings.Contains(s, "at ") {
		t.Fatalf("rendered backtrace missing frame info:\n%s", s)
	}
	if got := bt.IntoDiagArg(); got.Kind() != ArgStr || got.Str() != s {
		t.Fatal("IntoDiagArg must render the standard textual form")
	}
}

func TestEmptyBacktrace(t *testing.T) {
	if got := (Backtrace{}).IntoDiagArg().Str(); got != "<empty backtrace>" {
		t.Fatalf("empty backtrace = %q", got)
	}
}

func TestCallerLocation(t *testing.T) {
	loc := CallerLocation(0)
	if !strings.HasSuffix(loc.File, "backtrace_test.go") {
		t.Fatalf("File = %q, want this test file", loc.File)
	}
	if loc.Line == 0 || loc.Col != 1 {
		t.Fatalf("Line/Col = %d/%d", loc.Line, loc.Col)
	}
	want := loc.File + ":"
	if !strings.HasPrefix(loc.String(), want) || !strings.HasSuffix(loc.String(), ":1") {
		t.Fatalf("String() = %q", loc.String())
	}
}
