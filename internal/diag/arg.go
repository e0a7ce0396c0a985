package diag

import (
	"fmt"
	"path/filepath"
	"strconv"

	"lumen/internal/num"
)

// ArgKind discriminates the renderable shapes an argument value can take.
type ArgKind uint8

const (
	// ArgNumber is a signed 128-bit integer.
	ArgNumber ArgKind = iota
	// ArgStr is an owned UTF-8 string.
	ArgStr
	// ArgStrList is an ordered string list rendered with an "and" separator.
	ArgStrList
)

func (k ArgKind) String() string {
	switch k {
	case ArgNumber:
		return "number"
	case ArgStr:
		return "str"
	case ArgStrList:
		return "str-list"
	}
	return "unknown"
}

// ArgValue is the closed set of payloads a diagnostic argument can carry.
// Exactly three shapes are constructible: Number, Str, and StrListSepByAnd.
// Values are immutable once built.
type ArgValue struct {
	kind ArgKind
	numv num.Int128
	strv string
	list []string
}

// NumberValue builds a Number argument.
func NumberValue(v num.Int128) ArgValue {
	return ArgValue{kind: ArgNumber, numv: v}
}

// StrValue builds a Str argument.
func StrValue(s string) ArgValue {
	return ArgValue{kind: ArgStr, strv: s}
}

// StrListValue builds a StrListSepByAnd argument. The input slice is copied;
// element order is preserved and significant.
func StrListValue(items []string) ArgValue {
	cp := make([]string, len(items))
	copy(cp, items)
	return ArgValue{kind: ArgStrList, list: cp}
}

// Kind returns the shape discriminant.
func (v ArgValue) Kind() ArgKind { return v.kind }

// Number returns the numeric payload; zero for non-Number values.
func (v ArgValue) Number() num.Int128 { return v.numv }

// Str returns the string payload; empty for non-Str values.
func (v ArgValue) Str() string { return v.strv }

// StrList returns a copy of the list payload; nil for non-list values.
func (v ArgValue) StrList() []string {
	if v.list == nil {
		return nil
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp
}

// Equal reports whether two values are identical in shape and payload.
func (v ArgValue) Equal(other ArgValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ArgNumber:
		return v.numv == other.numv
	case ArgStr:
		return v.strv == other.strv
	case ArgStrList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

// IntoDiagArg is the conversion capability every domain type implements to
// appear in a diagnostic message. Implementations take a value receiver
// (consume-by-copy), are pure, and must be total: no input value may fail
// or panic.
type IntoDiagArg interface {
	IntoDiagArg() ArgValue
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntArg widens any signed integer into a Number argument without loss.
func IntArg[T signedInt](v T) ArgValue {
	return NumberValue(num.FromInt64(int64(v)))
}

// UintArg widens any unsigned integer into a Number argument without loss
// or wraparound.
func UintArg[T unsignedInt](v T) ArgValue {
	return NumberValue(num.FromUint64(uint64(v)))
}

// BoolArg converts to the exact literals "true" and "false".
func BoolArg(v bool) ArgValue {
	if v {
		return StrValue("true")
	}
	return StrValue("false")
}

// RuneArg converts a character using its quoted form ('x', '\n', 'é')
// so whitespace and non-printable characters stay unambiguous in rendered
// text.
func RuneArg(r rune) ArgValue {
	return StrValue(strconv.QuoteRune(r))
}

// StrArg converts a string to its display form.
func StrArg(s string) ArgValue {
	return StrValue(s)
}

// PathArg converts a filesystem path to its display form. Paths are cleaned
// but never quoted or escaped.
func PathArg(path string) ArgValue {
	return StrValue(filepath.Clean(path))
}

// ErrArg converts an error to its textual form. A nil error still yields a
// value; that situation is a defect at the call site, not a failure here.
func ErrArg(err error) ArgValue {
	if err == nil {
		return StrValue("<nil>")
	}
	return StrValue(err.Error())
}

// Ref converts through a pointer by copying the referent and delegating to
// its own conversion. The pointer identity never leaks into the argument.
// A nil pointer still yields a value; as with ErrArg, that situation is a
// defect at the call site, not a failure here.
func Ref[T IntoDiagArg](p *T) ArgValue {
	if p == nil {
		return StrValue("<nil>")
	}
	v := *p
	return v.IntoDiagArg()
}

// FromDisplay forwards any fmt.Stringer to its textual form. It is the
// generic fallback for types without a dedicated conversion rule and
// carries no state of its own.
type FromDisplay struct {
	Val fmt.Stringer
}

// Display wraps v for conversion via its String method.
func Display(v fmt.Stringer) FromDisplay {
	return FromDisplay{Val: v}
}

func (d FromDisplay) IntoDiagArg() ArgValue {
	if d.Val == nil {
		return StrValue("<nil>")
	}
	return StrValue(d.Val.String())
}

// NameList is an ordered list of identifiers destined for "`a`, `b` and
// `c`" style rendering. Conversion wraps each name in backticks and
// preserves input order; joining is the renderer's job.
type NameList []string

func (l NameList) IntoDiagArg() ArgValue {
	items := make([]string, len(l))
	for i, name := range l {
		items[i] = "`" + name + "`"
	}
	return ArgValue{kind: ArgStrList, list: items}
}
