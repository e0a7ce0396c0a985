package target

import (
	"fmt"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// DataLayoutError is the closed set of causes a data-layout specification
// can fail for. The interface is sealed: every variant lives in this
// package, so dispatch over it can be checked for exhaustiveness by
// errors_test.go enumerating all variants.
type DataLayoutError interface {
	error
	sealedDataLayoutError()
}

// InvalidAddressSpace reports an unparseable pointer address space.
type InvalidAddressSpace struct {
	AddrSpace string
	Cause     string
	Err       error
}

// InvalidBits reports an unparseable size or alignment bit count.
// Kind is "size" or "align"; Bit is the offending text.
type InvalidBits struct {
	Kind  string
	Bit   string
	Cause string
	Err   error
}

// MissingAlignment reports a component with no alignment at all.
type MissingAlignment struct {
	Cause string
}

// InvalidAlignment reports an alignment that parsed as a number but is not
// a valid alignment value.
type InvalidAlignment struct {
	Cause string
	Err   AlignError
}

// InconsistentTargetArchitecture reports a data layout whose byte order
// contradicts the target architecture.
type InconsistentTargetArchitecture struct {
	DL     string
	Target string
}

// InconsistentTargetPointerWidth reports a data layout whose pointer size
// contradicts the target architecture.
type InconsistentTargetPointerWidth struct {
	PointerSize uint64
	Target      string
}

// InvalidBitsSize reports a bit count no layout size can represent.
type InvalidBitsSize struct {
	Err string
}

func (e InvalidAddressSpace) Error() string {
	return fmt.Sprintf("invalid address space %q in %q: %v", e.AddrSpace, e.Cause, e.Err)
}

func (e InvalidBits) Error() string {
	return fmt.Sprintf("invalid %s %q in %q: %v", e.Kind, e.Bit, e.Cause, e.Err)
}

func (e MissingAlignment) Error() string {
	return fmt.Sprintf("missing alignment in %q", e.Cause)
}

func (e InvalidAlignment) Error() string {
	return fmt.Sprintf("invalid alignment in %q: %v", e.Cause, e.Err)
}

func (e InconsistentTargetArchitecture) Error() string {
	return fmt.Sprintf("data layout byte order %q differs from target %q", e.DL, e.Target)
}

func (e InconsistentTargetPointerWidth) Error() string {
	return fmt.Sprintf("data layout pointer size %d differs from target %q", e.PointerSize, e.Target)
}

func (e InvalidBitsSize) Error() string {
	return e.Err
}

func (InvalidAddressSpace) sealedDataLayoutError()            {}
func (InvalidBits) sealedDataLayoutError()                    {}
func (MissingAlignment) sealedDataLayoutError()               {}
func (InvalidAlignment) sealedDataLayoutError()               {}
func (InconsistentTargetArchitecture) sealedDataLayoutError() {}
func (InconsistentTargetPointerWidth) sealedDataLayoutError() {}
func (InvalidBitsSize) sealedDataLayoutError()                {}

// Diagnose selects the template and argument bindings for a data layout
// error in a single dispatch step. Each variant binds its own fixed,
// disjoint argument set; the chosen diagnostic is the final description of
// that failure. Errors carry no source span.
func Diagnose(err DataLayoutError, sev diag.Severity) *diag.Diagnostic {
	switch e := err.(type) {
	case InvalidAddressSpace:
		return diag.New(sev, diag.KeyTargetInvalidAddressSpace, source.Span{}).
			Arg("addr_space", diag.StrArg(e.AddrSpace)).
			Arg("cause", diag.StrArg(e.Cause)).
			Arg("err", diag.ErrArg(e.Err))
	case InvalidBits:
		return diag.New(sev, diag.KeyTargetInvalidBits, source.Span{}).
			Arg("kind", diag.StrArg(e.Kind)).
			Arg("bit", diag.StrArg(e.Bit)).
			Arg("cause", diag.StrArg(e.Cause)).
			Arg("err", diag.ErrArg(e.Err))
	case MissingAlignment:
		return diag.New(sev, diag.KeyTargetMissingAlignment, source.Span{}).
			Arg("cause", diag.StrArg(e.Cause))
	case InvalidAlignment:
		return diag.New(sev, diag.KeyTargetInvalidAlignment, source.Span{}).
			Arg("cause", diag.StrArg(e.Cause)).
			Arg("err_kind", diag.StrArg(e.Err.DiagIdent())).
			Arg("align", diag.UintArg(e.Err.Align))
	case InconsistentTargetArchitecture:
		return diag.New(sev, diag.KeyTargetInconsistentArchitecture, source.Span{}).
			Arg("dl", diag.StrArg(e.DL)).
			Arg("target", diag.StrArg(e.Target))
	case InconsistentTargetPointerWidth:
		return diag.New(sev, diag.KeyTargetInconsistentPointerWidth, source.Span{}).
			Arg("pointer_size", diag.UintArg(e.PointerSize)).
			Arg("target", diag.StrArg(e.Target))
	case InvalidBitsSize:
		return diag.New(sev, diag.KeyTargetInvalidBitsSize, source.Span{}).
			Arg("err", diag.StrArg(e.Err))
	default:
		// The variant set is sealed; errors_test.go enumerates it.
		panic(fmt.Sprintf("unhandled data layout error %T", err))
	}
}
