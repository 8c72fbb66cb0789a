package ir

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bairiak"
)

func TestLayoutIDDeterminism(t *testing.T) {
	e := EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded", "IsVoid"}}

	id1, err := LayoutID(e)
	require.NoError(t, err)
	id2, err := LayoutID(e)
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "LayoutID must be deterministic")

	parsed, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestLayoutIDKnownValue(t *testing.T) {
	// Pinned so that an accidental change to the namespace or the canonical
	// form shows up as a test failure instead of silently new IDs.
	e := EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded", "IsVoid"}}
	assert.Equal(t, "6a89fabb-b3ec-57c3-a6af-bf3e4811e96c", MustLayoutID(e))
}

func TestLayoutIDChangesWithLayout(t *testing.T) {
	base := EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded"}}

	renamed := EnumSpec{Name: "Billing", Variants: []string{"IsPaid", "IsRefunded"}}
	reordered := EnumSpec{Name: "Payment", Variants: []string{"IsRefunded", "IsPaid"}}
	extended := EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded", "IsVoid"}}

	id := MustLayoutID(base)
	assert.NotEqual(t, id, MustLayoutID(renamed), "renaming the enum changes the layout")
	assert.NotEqual(t, id, MustLayoutID(reordered), "reordering variants moves bits")
	assert.NotEqual(t, id, MustLayoutID(extended), "adding a variant changes the layout")
}

func TestLayoutIDIgnoresSourceLine(t *testing.T) {
	a := EnumSpec{Name: "Payment", Variants: []string{"IsPaid"}, Line: 3}
	b := EnumSpec{Name: "Payment", Variants: []string{"IsPaid"}, Line: 40}
	assert.Equal(t, MustLayoutID(a), MustLayoutID(b))
}

func TestFingerprint(t *testing.T) {
	code := []byte("package flags\n")

	fp := Fingerprint(code)
	assert.Len(t, fp, 64, "SHA-256 hex is 64 characters")
	assert.Equal(t, fp, Fingerprint([]byte("package flags\n")))
	assert.NotEqual(t, fp, Fingerprint([]byte("package other\n")))
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, hashWithDomain("a", data), hashWithDomain("b", data))
	// "ab"+0x00+"c" must differ from "a"+0x00+"bc"
	assert.NotEqual(t, hashWithDomain("ab", []byte("c")), hashWithDomain("a", []byte("bc")))
}

func TestNewEnumLayout(t *testing.T) {
	e := EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded", "IsVoid"}}

	layout, err := NewEnumLayout(e, bairiak.Width8)
	require.NoError(t, err)

	assert.Equal(t, "Payment", layout.Name)
	assert.Equal(t, bairiak.Width8, layout.Width)
	assert.Equal(t, []VariantBit{
		{Name: "IsPaid", Bit: 0},
		{Name: "IsRefunded", Bit: 1},
		{Name: "IsVoid", Bit: 2},
	}, layout.Variants)
	assert.Equal(t, MustLayoutID(e), layout.LayoutID)
	assert.Equal(t, e.Variants, layout.Names())
}

func TestNewEnumLayoutRejectsNarrowWidth(t *testing.T) {
	e := EnumSpec{Name: "Wide", Variants: make([]string, 9)}
	_, err := NewEnumLayout(e, bairiak.Width8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not fit")
}

func TestModelLookup(t *testing.T) {
	m := &Model{Enums: []EnumSpec{
		{Name: "Payment", Variants: []string{"IsPaid", "IsVoid"}},
		{Name: "Shipping", Variants: []string{"IsShipped"}},
	}}

	e, ok := m.Enum("Shipping")
	require.True(t, ok)
	assert.Equal(t, []string{"IsShipped"}, e.Variants)

	_, ok = m.Enum("Missing")
	assert.False(t, ok)

	payment, _ := m.Enum("Payment")
	i, ok := payment.Index("IsVoid")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = payment.Index("IsShipped")
	assert.False(t, ok)
}
