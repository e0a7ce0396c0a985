package diag

import (
	"fmt"
	"runtime"
)

// Location records the compiler call site that emitted a diagnostic, used
// when a delayed bug is flushed and we need to say where it came from.
//
// Go exposes no column information at runtime, so Col is pinned to 1 to
// keep the rendered file:line:column shape stable for templates.
type Location struct {
	File string
	Line int
	Col  int
}

// CallerLocation captures the call site skip frames above the caller.
// skip = 0 means the immediate caller of CallerLocation.
func CallerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "<unknown>", Line: 0, Col: 1}
	}
	return Location{File: file, Line: line, Col: 1}
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

func (l Location) IntoDiagArg() ArgValue {
	return StrValue(l.String())
}
