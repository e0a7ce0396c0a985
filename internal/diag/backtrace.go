package diag

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is one resolved stack frame of a Backtrace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Backtrace is a stack capture taken when a delayed diagnostic is recorded.
// Frames are resolved at capture time so rendering stays a pure in-memory
// operation. Capture walks the stack and is the only non-trivial cost in
// this package; it is expected to run rarely.
type Backtrace struct {
	Frames []Frame
}

const backtraceDepth = 64

// CaptureBacktrace records the current stack, skipping skip frames above
// the caller. skip = 0 starts at the immediate caller of CaptureBacktrace.
func CaptureBacktrace(skip int) Backtrace {
	var pcs [backtraceDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Backtrace{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return Backtrace{Frames: out}
}

// String renders the capture one frame per line, innermost first.
func (b Backtrace) String() string {
	if len(b.Frames) == 0 {
		return "<empty backtrace>"
	}
	var sb strings.Builder
	for i, fr := range b.Frames {
		fmt.Fprintf(&sb, "%3d: %s\n", i, fr.Function)
		fmt.Fprintf(&sb, "     at %s:%d", fr.File, fr.Line)
		if i < len(b.Frames)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b Backtrace) IntoDiagArg() ArgValue {
	return StrValue(b.String())
}
