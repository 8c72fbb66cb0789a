package bairiak

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUnknownVariant matches every [UnknownVariantError] with errors.Is.
var ErrUnknownVariant = errors.New("bairiak: unknown variant")

// UnknownVariantError reports a flag that is not declared for its enum.
// Generated constructors return it; generated queries panic with it, since
// an undeclared variant can only come from a bad conversion in the caller.
type UnknownVariantError struct {
	Enum    string
	Ordinal int
	Count   int
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("bairiak: %s(%d) is not a declared variant (%s declares %d)",
		e.Enum, e.Ordinal, e.Enum, e.Count)
}

// Is makes errors.Is(err, ErrUnknownVariant) succeed.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// UnknownName renders an undeclared variant the way generated String
// methods do.
func UnknownName(enum string, ordinal uint8) string {
	return fmt.Sprintf("%s(%d)", enum, ordinal)
}

// CheckRaw verifies that raw only uses the low count bits. It returns an
// UnknownVariantError naming the lowest offending bit otherwise.
func CheckRaw(enum string, raw uint64, count int) error {
	extra := raw &^ lowMask64(count)
	if extra == 0 {
		return nil
	}
	return &UnknownVariantError{Enum: enum, Ordinal: bits.TrailingZeros64(extra), Count: count}
}

// CheckRaw128 is CheckRaw for 128-bit values.
func CheckRaw128(enum string, raw Uint128, count int) error {
	extra := raw.AndNot(LowBits(count))
	if extra.IsZero() {
		return nil
	}
	return &UnknownVariantError{Enum: enum, Ordinal: extra.TrailingZeros(), Count: count}
}

// IndexError reports a bit index that does not fit a width.
type IndexError struct {
	Index int
	Width Width
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bairiak: bit %d out of range for %s value", e.Index, e.Width)
}

func lowMask64(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}
