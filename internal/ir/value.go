package ir

import (
	"maps"
	"slices"
)

// IRValue is a sealed interface over the values canonical JSON accepts:
// IRString, IRInt, IRArray and IRObject. Layouts and manifests only hold
// names, bit indices and widths, so there is no float, bool or null.
type IRValue interface {
	irValue()
}

// IRString is a string value.
type IRString string

func (IRString) irValue() {}

// IRInt is an integer value.
type IRInt int64

func (IRInt) irValue() {}

// IRArray is an ordered list of values.
type IRArray []IRValue

func (IRArray) irValue() {}

// IRObject maps string keys to values.
// Use SortedKeys() for deterministic iteration.
type IRObject map[string]IRValue

func (IRObject) irValue() {}

// Strings converts ss into an IRArray of IRString, keeping order.
func Strings(ss []string) IRArray {
	arr := make(IRArray, len(ss))
	for i, s := range ss {
		arr[i] = IRString(s)
	}
	return arr
}

// SortedKeys returns the keys of obj in byte order. Keys are fixed ASCII
// field names, where byte order and UTF-16 order agree.
func (obj IRObject) SortedKeys() []string {
	return slices.Sorted(maps.Keys(obj))
}
