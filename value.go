package bairiak

// Value is a packed flag word whose width is only known at run time. The
// generator and the command line tools use it to encode and decode raw
// integers straight from a spec; application code uses the generated types.
type Value struct {
	width Width
	bits  Uint128
}

// NewValue returns the value of width w with the given bit indices set.
// An empty index list yields zero.
func NewValue(w Width, indices ...int) (Value, error) {
	if !w.Valid() {
		_, err := ParseWidth(int(w))
		return Value{}, err
	}
	v := Value{width: w}
	for _, i := range indices {
		if i < 0 || i >= w.Bits() {
			return Value{}, &IndexError{Index: i, Width: w}
		}
		v.bits = v.bits.SetBit(uint8(i))
	}
	return v, nil
}

// ValueFromRaw wraps a raw integer, rejecting bits that do not fit w.
func ValueFromRaw(w Width, raw Uint128) (Value, error) {
	if !w.Valid() {
		_, err := ParseWidth(int(w))
		return Value{}, err
	}
	if extra := raw.AndNot(LowBits(w.Bits())); !extra.IsZero() {
		return Value{}, &IndexError{Index: extra.TrailingZeros(), Width: w}
	}
	return Value{width: w, bits: raw}, nil
}

// Width returns the width of v.
func (v Value) Width() Width {
	return v.width
}

// Raw returns the packed integer.
func (v Value) Raw() Uint128 {
	return v.bits
}

// IsTrue reports whether bit i is set.
func (v Value) IsTrue(i int) bool {
	if i < 0 || i >= v.width.Bits() {
		return false
	}
	return v.bits.Bit(uint8(i))
}

// IsFalse reports whether bit i is clear. It is always !v.IsTrue(i).
func (v Value) IsFalse(i int) bool {
	return !v.IsTrue(i)
}

// Indices returns the set bit indices in ascending order.
func (v Value) Indices() []int {
	var out []int
	for i := 0; i < v.width.Bits(); i++ {
		if v.bits.Bit(uint8(i)) {
			out = append(out, i)
		}
	}
	return out
}

// String formats the packed integer in decimal.
func (v Value) String() string {
	return v.bits.String()
}
