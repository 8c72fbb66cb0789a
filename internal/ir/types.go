package ir

import (
	"fmt"

	"github.com/roach88/bairiak"
)

// Model is a parsed bairiak spec: the declared enums in source order.
type Model struct {
	Enums  []EnumSpec `json:"enums"`
	Source string     `json:"-"` // Path the model was read from, if any
}

// EnumSpec declares one enum of boolean flags.
// The position of a variant in Variants is its bit index.
type EnumSpec struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
	Line     int      `json:"-"` // 1-based line of the declaration, 0 if unknown
}

// Enum returns the enum declared with the given name.
func (m *Model) Enum(name string) (EnumSpec, bool) {
	for _, e := range m.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return EnumSpec{}, false
}

// Index returns the bit index of variant.
func (e EnumSpec) Index(variant string) (int, bool) {
	for i, v := range e.Variants {
		if v == variant {
			return i, true
		}
	}
	return 0, false
}

// EnumLayout is the bit layout of a validated enum.
type EnumLayout struct {
	Name     string        `json:"name"`
	Width    bairiak.Width `json:"width"`
	Variants []VariantBit  `json:"variants"`
	LayoutID string        `json:"layout_id"`
}

// VariantBit binds a variant name to its bit index.
type VariantBit struct {
	Name string `json:"name"`
	Bit  int    `json:"bit"`
}

// NewEnumLayout derives the layout of e packed into width w.
// e must already be validated; w must hold every variant.
func NewEnumLayout(e EnumSpec, w bairiak.Width) (EnumLayout, error) {
	if len(e.Variants) > w.Bits() {
		return EnumLayout{}, fmt.Errorf("enum %s: %d variants do not fit %s", e.Name, len(e.Variants), w)
	}

	id, err := LayoutID(e)
	if err != nil {
		return EnumLayout{}, err
	}

	layout := EnumLayout{
		Name:     e.Name,
		Width:    w,
		Variants: make([]VariantBit, len(e.Variants)),
		LayoutID: id,
	}
	for i, v := range e.Variants {
		layout.Variants[i] = VariantBit{Name: v, Bit: i}
	}
	return layout, nil
}

// Names returns the variant names in bit order.
func (l EnumLayout) Names() []string {
	names := make([]string, len(l.Variants))
	for i, v := range l.Variants {
		names[i] = v.Name
	}
	return names
}
