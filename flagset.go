package bairiak

import (
	"fmt"
	"strings"
)

// FlagSet is an unordered set of flags used to build a packed value.
// Order and duplicates never change the value built from a set.
type FlagSet[V comparable] map[V]struct{}

// NewFlagSet returns a set holding flags.
func NewFlagSet[V comparable](flags ...V) FlagSet[V] {
	s := make(FlagSet[V], len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether v is in s.
func (s FlagSet[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v into s.
func (s FlagSet[V]) Add(v V) {
	s[v] = struct{}{}
}

// Len returns the number of flags in s.
func (s FlagSet[V]) Len() int {
	return len(s)
}

// Members returns the flags in s in unspecified order.
func (s FlagSet[V]) Members() []V {
	out := make([]V, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Format renders the flags of a packed value as Enum{A|B}. Generated
// String methods call it with the flags in bit order.
func Format[V fmt.Stringer](enum string, flags []V) string {
	var b strings.Builder
	b.WriteString(enum)
	b.WriteByte('{')
	for i, f := range flags {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.String())
	}
	b.WriteByte('}')
	return b.String()
}
