package target

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// maxSizeBits caps the bit count any layout size can represent.
const maxSizeBits = uint64(1) << 61

// DataLayout captures the subset of an LLVM-style data layout
// specification the compiler needs: byte order, pointer shape, stack
// alignment, and per-type alignments.
type DataLayout struct {
	Spec         string
	Endian       Endianness
	PointerBits  uint32
	PointerAlign Align
	StackAlign   Align
	TypeAligns   map[string]Align
}

// ParseDataLayout parses a specification like
// "e-m:e-p:64:64-i64:64-a:0:64-S128". Unknown components are skipped for
// forward compatibility; malformed ones surface as one of the closed
// DataLayoutError causes.
func ParseDataLayout(spec string) (*DataLayout, DataLayoutError) {
	dl := &DataLayout{
		Spec:        spec,
		Endian:      LittleEndian,
		PointerBits: 64,
		TypeAligns:  make(map[string]Align),
	}

	for _, comp := range strings.Split(spec, "-") {
		if comp == "" {
			continue
		}
		switch {
		case comp == "e":
			dl.Endian = LittleEndian
		case comp == "E":
			dl.Endian = BigEndian
		case strings.HasPrefix(comp, "m:"), strings.HasPrefix(comp, "n"):
			// Mangling and native integer widths do not affect layout.
		case strings.HasPrefix(comp, "S"):
			align, err := parseAlignBits(comp[1:], comp)
			if err != nil {
				return nil, err
			}
			dl.StackAlign = align
		case strings.HasPrefix(comp, "p"):
			if err := dl.parsePointer(comp); err != nil {
				return nil, err
			}
		case comp[0] == 'i' || comp[0] == 'f' || comp[0] == 'v' || comp[0] == 'a':
			if err := dl.parseTypeAlign(comp); err != nil {
				return nil, err
			}
		default:
			// Skip unrecognized components.
		}
	}
	return dl, nil
}

// parsePointer handles "p[addrspace]:<size>:<abi>[:<pref>]".
func (dl *DataLayout) parsePointer(comp string) DataLayoutError {
	parts := strings.Split(comp, ":")
	addrSpace := strings.TrimPrefix(parts[0], "p")
	if addrSpace != "" {
		n, err := strconv.ParseUint(addrSpace, 10, 64)
		if err != nil {
			return InvalidAddressSpace{AddrSpace: addrSpace, Cause: comp, Err: err}
		}
		if _, err := safecast.Conv[uint32](n); err != nil {
			return InvalidAddressSpace{AddrSpace: addrSpace, Cause: comp, Err: err}
		}
		if n != 0 {
			// Non-default address spaces do not shape the layout.
			return nil
		}
	}
	if len(parts) < 3 {
		return MissingAlignment{Cause: comp}
	}

	sizeBits, err := parseBits(parts[1], "size", comp)
	if err != nil {
		return err
	}
	if sizeBits%8 != 0 || sizeBits == 0 {
		return InvalidBitsSize{Err: fmt.Sprintf("pointer size %d bits is not a whole number of bytes", sizeBits)}
	}
	ptrBits, convErr := safecast.Conv[uint32](sizeBits)
	if convErr != nil {
		return InvalidBitsSize{Err: fmt.Sprintf("pointer size %d bits is out of range", sizeBits)}
	}
	align, aerr := parseAlignBits(parts[2], comp)
	if aerr != nil {
		return aerr
	}
	dl.PointerBits = ptrBits
	dl.PointerAlign = align
	return nil
}

// parseTypeAlign handles "i<bits>:<abi>[:<pref>]" and friends, plus the
// sizeless aggregate form "a:<abi>".
func (dl *DataLayout) parseTypeAlign(comp string) DataLayoutError {
	parts := strings.Split(comp, ":")
	if comp[0] != 'a' && len(parts[0]) > 1 {
		sizeBits, err := parseBits(parts[0][1:], "size", comp)
		if err != nil {
			return err
		}
		if sizeBits > maxSizeBits {
			return InvalidBitsSize{Err: fmt.Sprintf("size %d bits cannot be represented", sizeBits)}
		}
	}
	if len(parts) < 2 {
		return MissingAlignment{Cause: comp}
	}
	alignPart := parts[1]
	if comp[0] == 'a' && alignPart == "0" && len(parts) >= 3 {
		// "a:0:<abi>" puts the ABI alignment in the third slot.
		alignPart = parts[2]
	}
	align, err := parseAlignBits(alignPart, comp)
	if err != nil {
		return err
	}
	dl.TypeAligns[parts[0]] = align
	return nil
}

// parseBits parses a decimal bit count; kind names the field for the
// diagnostic ("size" or "align").
func parseBits(s, kind, cause string) (uint64, DataLayoutError) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, InvalidBits{Kind: kind, Bit: s, Cause: cause, Err: err}
	}
	return n, nil
}

// parseAlignBits parses a bit count and validates it as an alignment.
func parseAlignBits(s, cause string) (Align, DataLayoutError) {
	bits, err := parseBits(s, "align", cause)
	if err != nil {
		return Align{}, err
	}
	align, aerr := AlignFromBits(bits)
	if aerr != nil {
		var ae AlignError
		if !errors.As(aerr, &ae) {
			ae = AlignError{Kind: AlignNotWholeBytes, Align: bits}
		}
		return Align{}, InvalidAlignment{Cause: cause, Err: ae}
	}
	return align, nil
}

// CheckConsistency validates the layout against the target triple.
func (dl *DataLayout) CheckConsistency(t Triple) DataLayoutError {
	if dl.Endian != t.Endian() {
		return InconsistentTargetArchitecture{DL: dl.Endian.String(), Target: t.Arch}
	}
	if want, ok := t.PointerBits(); ok && want != dl.PointerBits {
		return InconsistentTargetPointerWidth{PointerSize: uint64(dl.PointerBits), Target: t.String()}
	}
	return nil
}
