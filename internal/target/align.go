package target

import (
	"fmt"
	"math/bits"
)

// Align is a power-of-two alignment, stored as the exponent.
type Align struct {
	pow2 uint8
}

// maxAlignBytes caps alignments at 2^29 bytes, the largest value object
// layout can represent.
const maxAlignBytes = uint64(1) << 29

// AlignErrorKind discriminates the ways an alignment value can be invalid.
type AlignErrorKind uint8

const (
	AlignNotPowerOfTwo AlignErrorKind = iota
	AlignTooLarge
	AlignNotWholeBytes
)

// alignErrIdents maps each kind to the discriminant string diagnostics
// bind as err_kind. Total over the enum; align_test.go walks every variant.
var alignErrIdents = map[AlignErrorKind]string{
	AlignNotPowerOfTwo: "not_power_of_two",
	AlignTooLarge:      "too_large",
	AlignNotWholeBytes: "not_whole_bytes",
}

// AlignError describes an invalid alignment value. Align carries the
// offending byte count, except for AlignNotWholeBytes where no byte count
// exists and it carries the raw bit count instead.
type AlignError struct {
	Kind  AlignErrorKind
	Align uint64
}

func (e AlignError) Error() string {
	switch e.Kind {
	case AlignNotPowerOfTwo:
		return fmt.Sprintf("alignment of %d bytes is not a power of two", e.Align)
	case AlignTooLarge:
		return fmt.Sprintf("alignment of %d bytes is too large", e.Align)
	case AlignNotWholeBytes:
		return fmt.Sprintf("alignment of %d bits is not a whole number of bytes", e.Align)
	}
	return "invalid alignment"
}

// DiagIdent returns the stable discriminant used in diagnostics.
func (e AlignError) DiagIdent() string {
	if id, ok := alignErrIdents[e.Kind]; ok {
		return id
	}
	return "invalid"
}

// AlignFromBytes builds an alignment from a byte count.
func AlignFromBytes(align uint64) (Align, error) {
	if align == 0 || align&(align-1) != 0 {
		return Align{}, AlignError{Kind: AlignNotPowerOfTwo, Align: align}
	}
	if align > maxAlignBytes {
		return Align{}, AlignError{Kind: AlignTooLarge, Align: align}
	}
	return Align{pow2: uint8(bits.TrailingZeros64(align))}, nil
}

// AlignFromBits builds an alignment from a bit count.
func AlignFromBits(align uint64) (Align, error) {
	if align%8 != 0 {
		return Align{}, AlignError{Kind: AlignNotWholeBytes, Align: align}
	}
	return AlignFromBytes(align / 8)
}

// Bytes returns the alignment in bytes.
func (a Align) Bytes() uint64 {
	return uint64(1) << a.pow2
}

// Bits returns the alignment in bits.
func (a Align) Bits() uint64 {
	return a.Bytes() * 8
}

func (a Align) String() string {
	return fmt.Sprintf("%d", a.Bytes())
}
