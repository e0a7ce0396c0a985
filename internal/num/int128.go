package num

import (
	"math/bits"
	"strings"
)

// Int128 is a signed 128-bit integer stored as a two's-complement
// high/low limb pair. Hi carries the sign bit.
//
// The zero value is zero. Values are comparable with ==.
//
// Int128 exists so that every machine integer width, signed or unsigned,
// can widen into one numeric type without loss: uint64 does not fit in
// int64, and int64 does not fit in uint64.
type Int128 struct {
	Hi int64
	Lo uint64
}

// FromInt64 widens a signed 64-bit value.
func FromInt64(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}
	return Int128{Lo: uint64(v)}
}

// FromUint64 widens an unsigned 64-bit value.
func FromUint64(v uint64) Int128 {
	return Int128{Lo: v}
}

// IsZero reports whether the value is zero.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// IsNeg reports whether the value is negative.
func (i Int128) IsNeg() bool {
	return i.Hi < 0
}

// Int64 returns the value as an int64 if it fits.
func (i Int128) Int64() (int64, bool) {
	if i.Hi == 0 && i.Lo <= 1<<63-1 {
		return int64(i.Lo), true
	}
	if i.Hi == -1 && i.Lo >= 1<<63 {
		return int64(i.Lo), true
	}
	return 0, false
}

// Uint64 returns the value as a uint64 if it fits.
func (i Int128) Uint64() (uint64, bool) {
	if i.Hi == 0 {
		return i.Lo, true
	}
	return 0, false
}

// String renders the value in decimal.
//
// The magnitude is peeled off in base-1e9 chunks, least significant first,
// then stitched back together with zero padding between chunks.
func (i Int128) String() string {
	if i.IsZero() {
		return "0"
	}

	neg := i.Hi < 0
	hi, lo := uint64(i.Hi), i.Lo
	if neg {
		// Two's-complement negate to get the magnitude.
		lo = ^lo + 1
		hi = ^hi
		if lo == 0 {
			hi++
		}
	}

	const base = 1_000_000_000

	var parts []uint64
	for hi != 0 || lo != 0 {
		qhi := hi / base
		rem := hi % base
		qlo, r := bits.Div64(rem, lo, base)
		parts = append(parts, r)
		hi, lo = qhi, qlo
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	writeDecimal(&sb, parts[len(parts)-1], false)
	for k := len(parts) - 2; k >= 0; k-- {
		writeDecimal(&sb, parts[k], true)
	}
	return sb.String()
}

func writeDecimal(sb *strings.Builder, chunk uint64, pad bool) {
	var buf [9]byte
	n := len(buf)
	for chunk > 0 {
		n--
		buf[n] = byte('0' + chunk%10)
		chunk /= 10
	}
	if pad {
		for n > 0 {
			n--
			buf[n] = '0'
		}
	}
	sb.Write(buf[n:])
}
