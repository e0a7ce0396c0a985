package diag

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"lumen/internal/num"
)

func TestIntArgWidensFullInt8Range(t *testing.T) {
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		got := IntArg(int8(v))
		if got.Kind() != ArgNumber {
			t.Fatalf("IntArg(%d) kind = %v, want number", v, got.Kind())
		}
		if got.Number() != num.FromInt64(int64(v)) {
			t.Fatalf("IntArg(%d) = %s", v, got.Number())
		}
	}
}

func TestIntArgBoundaries(t *testing.T) {
	tests := []struct {
		name string
		val  ArgValue
		want string
	}{
		{name: "int8 -5", val: IntArg(int8(-5)), want: "-5"},
		{name: "int16 min", val: IntArg(int16(math.MinInt16)), want: "-32768"},
		{name: "int32 max", val: IntArg(int32(math.MaxInt32)), want: "2147483647"},
		{name: "int64 min", val: IntArg(int64(math.MinInt64)), want: "-9223372036854775808"},
		{name: "uint8 max", val: UintArg(uint8(math.MaxUint8)), want: "255"},
		{name: "uint16 max", val: UintArg(uint16(math.MaxUint16)), want: "65535"},
		{name: "uint32 max", val: UintArg(uint32(math.MaxUint32)), want: "4294967295"},
		{name: "uint64 max", val: UintArg(uint64(math.MaxUint64)), want: "18446744073709551615"},
		{name: "uintptr", val: UintArg(uintptr(4096)), want: "4096"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val.Kind() != ArgNumber {
				t.Fatalf("kind = %v, want number", tt.val.Kind())
			}
			if got := tt.val.Number().String(); got != tt.want {
				t.Fatalf("Number() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBoolArgExactLiterals(t *testing.T) {
	if got := BoolArg(true); got.Kind() != ArgStr || got.Str() != "true" {
		t.Fatalf("BoolArg(true) = %v %q", got.Kind(), got.Str())
	}
	if got := BoolArg(false); got.Kind() != ArgStr || got.Str() != "false" {
		t.Fatalf("BoolArg(false) = %v %q", got.Kind(), got.Str())
	}
}

func TestRuneArgIsQuoted(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{r: 'x', want: "'x'"},
		{r: '\n', want: `'\n'`},
		{r: '\t', want: `'\t'`},
		{r: ' ', want: "' '"},
		{r: '\'', want: `'\''`},
		{r: 0, want: `'\x00'`},
	}
	for _, tt := range tests {
		got := RuneArg(tt.r)
		if got.Str() != tt.want {
			t.Fatalf("RuneArg(%q) = %q, want %q", tt.r, got.Str(), tt.want)
		}
		if got.Str() == string(tt.r) {
			t.Fatalf("RuneArg(%q) must differ from the bare character", tt.r)
		}
		back, err := strconv.Unquote(got.Str())
		if err != nil || []rune(back)[0] != tt.r {
			t.Fatalf("RuneArg(%q) does not round-trip: got %q, err %v", tt.r, back, err)
		}
	}
}

func TestPathArgDisplayForm(t *testing.T) {
	got := PathArg("src/../lib/main.lm")
	if got.Kind() != ArgStr {
		t.Fatalf("kind = %v, want str", got.Kind())
	}
	if got.Str() != filepath.Clean("src/../lib/main.lm") {
		t.Fatalf("PathArg = %q, want cleaned display form", got.Str())
	}
	if strings.HasPrefix(got.Str(), `"`) {
		t.Fatalf("PathArg must not quote, got %q", got.Str())
	}
}

func TestErrArg(t *testing.T) {
	if got := ErrArg(errors.New("bad spec")); got.Str() != "bad spec" {
		t.Fatalf("ErrArg = %q", got.Str())
	}
	if got := ErrArg(nil); got.Str() != "<nil>" {
		t.Fatalf("ErrArg(nil) = %q", got.Str())
	}
}

func TestNameListPreservesOrderAndDecoration(t *testing.T) {
	got := NameList{"foo", "bar"}.IntoDiagArg()
	if got.Kind() != ArgStrList {
		t.Fatalf("kind = %v, want str-list", got.Kind())
	}
	want := []string{"`foo`", "`bar`"}
	items := got.StrList()
	if len(items) != len(want) {
		t.Fatalf("StrList() = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("StrList()[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestNameListThreeElements(t *testing.T) {
	got := NameList{"a", "b", "c"}.IntoDiagArg().StrList()
	want := []string{"`a`", "`b`", "`c`"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

type testStringer struct{ s string }

func (t testStringer) String() string { return t.s }

func TestFromDisplayFallback(t *testing.T) {
	got := Display(testStringer{s: "x86_64-unknown-linux"}).IntoDiagArg()
	if got.Str() != "x86_64-unknown-linux" {
		t.Fatalf("Display = %q", got.Str())
	}
	if got := (FromDisplay{}).IntoDiagArg(); got.Str() != "<nil>" {
		t.Fatalf("nil Display = %q", got.Str())
	}
}

func TestRefClonesAndDelegates(t *testing.T) {
	l := NameList{"foo"}
	got := Ref(&l)
	if got.Kind() != ArgStrList || got.StrList()[0] != "`foo`" {
		t.Fatalf("Ref = %v %v", got.Kind(), got.StrList())
	}
	// Mutating the referent afterwards must not affect the converted value.
	l[0] = "changed"
	if got.StrList()[0] != "`foo`" {
		t.Fatalf("Ref must not alias the referent")
	}
}

func TestRefNilPointerIsTotal(t *testing.T) {
	got := Ref[NameList](nil)
	if got.Kind() != ArgStr || got.Str() != "<nil>" {
		t.Fatalf("Ref(nil) = %v %q, want the nil placeholder", got.Kind(), got.Str())
	}
}

func TestConversionIdempotence(t *testing.T) {
	inputs := []func() ArgValue{
		func() ArgValue { return IntArg(int8(-5)) },
		func() ArgValue { return UintArg(uint64(math.MaxUint64)) },
		func() ArgValue { return BoolArg(true) },
		func() ArgValue { return RuneArg('\n') },
		func() ArgValue { return StrArg("hello") },
		func() ArgValue { return NameList{"x", "y"}.IntoDiagArg() },
		func() ArgValue { return SevError.IntoDiagArg() },
	}
	for i, mk := range inputs {
		a, b := mk(), mk()
		if !a.Equal(b) {
			t.Fatalf("conversion %d is not idempotent: %v vs %v", i, a, b)
		}
	}
}

func TestStrListValueCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	v := StrListValue(in)
	in[0] = "mutated"
	if v.StrList()[0] != "a" {
		t.Fatal("StrListValue must copy its input")
	}
}
