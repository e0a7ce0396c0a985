package target

import (
	"fmt"
	"strings"

	"lumen/internal/diag"
)

// Triple identifies a compilation target as arch-vendor-os[-env].
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
}

// ParseTriple splits a target triple string. Triples with fewer than three
// components are rejected.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return Triple{}, fmt.Errorf("target triple %q must have at least arch-vendor-os", s)
	}
	t := Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2]}
	if len(parts) > 3 {
		t.Env = strings.Join(parts[3:], "-")
	}
	return t, nil
}

func (t Triple) String() string {
	s := t.Arch + "-" + t.Vendor + "-" + t.OS
	if t.Env != "" {
		s += "-" + t.Env
	}
	return s
}

// IntoDiagArg converts via the canonical triple string.
func (t Triple) IntoDiagArg() diag.ArgValue {
	return diag.StrValue(t.String())
}

// archPointerBits is the expected pointer width per known architecture.
var archPointerBits = map[string]uint32{
	"x86_64":  64,
	"aarch64": 64,
	"riscv64": 64,
	"s390x":   64,
	"i686":    32,
	"riscv32": 32,
	"wasm32":  32,
	"arm":     32,
}

// archBigEndian lists known big-endian architectures; everything else
// defaults to little-endian.
var archBigEndian = map[string]bool{
	"s390x":   true,
	"sparc64": true,
}

// PointerBits returns the expected pointer width for the triple's
// architecture, if known.
func (t Triple) PointerBits() (uint32, bool) {
	bits, ok := archPointerBits[t.Arch]
	return bits, ok
}

// Endian returns the expected byte order for the triple's architecture.
func (t Triple) Endian() Endianness {
	if archBigEndian[t.Arch] {
		return BigEndian
	}
	return LittleEndian
}
