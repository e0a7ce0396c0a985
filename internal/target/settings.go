package target

import (
	"lumen/internal/diag"
)

// Endianness is the byte order of a target.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

func (e Endianness) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(e.String())
}

// PanicStrategy selects what generated code does on panic.
type PanicStrategy uint8

const (
	PanicUnwind PanicStrategy = iota
	PanicAbort
)

// panicStrategyDesc is total over the enum; settings_test.go walks every
// variant.
var panicStrategyDesc = map[PanicStrategy]string{
	PanicUnwind: "unwind",
	PanicAbort:  "abort",
}

func (p PanicStrategy) Desc() string {
	if d, ok := panicStrategyDesc[p]; ok {
		return d
	}
	return "unknown"
}

func (p PanicStrategy) String() string { return p.Desc() }

// IntoDiagArg converts via the canonical strategy label.
func (p PanicStrategy) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(p.Desc())
}

// StackProtector selects the stack smashing protection level.
type StackProtector uint8

const (
	StackProtectorNone StackProtector = iota
	StackProtectorBasic
	StackProtectorStrong
	StackProtectorAll
)

var stackProtectorDesc = map[StackProtector]string{
	StackProtectorNone:   "none",
	StackProtectorBasic:  "basic",
	StackProtectorStrong: "strong",
	StackProtectorAll:    "all",
}

func (s StackProtector) String() string {
	if d, ok := stackProtectorDesc[s]; ok {
		return d
	}
	return "unknown"
}

func (s StackProtector) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(s.String())
}

// SplitDebugInfo selects where debug information lives relative to the
// object file.
type SplitDebugInfo uint8

const (
	SplitDebugOff SplitDebugInfo = iota
	SplitDebugPacked
	SplitDebugUnpacked
)

var splitDebugDesc = map[SplitDebugInfo]string{
	SplitDebugOff:      "off",
	SplitDebugPacked:   "packed",
	SplitDebugUnpacked: "unpacked",
}

func (s SplitDebugInfo) String() string {
	if d, ok := splitDebugDesc[s]; ok {
		return d
	}
	return "unknown"
}

func (s SplitDebugInfo) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(s.String())
}
