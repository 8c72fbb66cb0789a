// Package bairiak is the runtime support for generated flag types.
//
// A bairiak spec declares enums of named boolean flags. The bairiak generator
// turns each enum into a variant type and a packed value type whose underlying
// integer is the smallest of 8, 16, 32, 64 or 128 bits that holds every flag.
// Bit i of the packed value is the flag declared at position i, so the raw
// integer can be stored and read back across process restarts.
//
// Generated code depends on this package for [Uint128], [FlagSet],
// [UnknownVariantError] and a few formatting helpers. [Value] is the
// width-tagged form used by tooling that only knows the layout at run time.
package bairiak

import "fmt"

// MaxVariants is the largest number of flags a single enum may declare.
const MaxVariants = 128

// Width is the bit size of a packed value.
type Width uint8

// Supported widths.
const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// Widths lists the supported widths from narrowest to widest.
var Widths = []Width{Width8, Width16, Width32, Width64, Width128}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64, Width128:
		return true
	}
	return false
}

// Bits returns the number of bits in w.
func (w Width) Bits() int {
	return int(w)
}

// GoType returns the Go type that generated code uses to hold a value of
// width w.
func (w Width) GoType() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	case Width64:
		return "uint64"
	case Width128:
		return "bairiak.Uint128"
	}
	return ""
}

func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Width(%d)", uint8(w))
	}
	return fmt.Sprintf("%d-bit", uint8(w))
}

// ParseWidth converts a bit count into a Width.
func ParseWidth(bits int) (Width, error) {
	w := Width(bits)
	if bits < 0 || bits > MaxVariants || !w.Valid() {
		return 0, fmt.Errorf("bairiak: unsupported width %d", bits)
	}
	return w, nil
}
