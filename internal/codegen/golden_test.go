package codegen

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bairiak/internal/ir"
)

// To regenerate golden files, run:
//
//	go test ./internal/codegen -update
func assertGolden(t *testing.T, name string, data []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

var paymentEnum = ir.EnumSpec{Name: "Payment", Variants: []string{"IsPaid", "IsRefunded", "IsVoid"}}

var shippingEnum = ir.EnumSpec{Name: "Shipping", Variants: []string{
	"IsPacked", "IsShipped", "IsDelivered", "IsReturned", "NeedsSignature",
	"IsInternational", "IsExpress", "IsInsured", "IsFragile",
}}

// permissionEnum has every verb on every resource: 66 flags, so 128 bits.
func permissionEnum() ir.EnumSpec {
	verbs := []string{"Read", "Create", "Update", "Delete", "Export", "Approve"}
	resources := []string{
		"Orders", "Invoices", "Customers", "Products", "Reports", "Users",
		"Payments", "Shipments", "Refunds", "Discounts", "Suppliers",
	}
	e := ir.EnumSpec{Name: "Permission"}
	for _, r := range resources {
		for _, v := range verbs {
			e.Variants = append(e.Variants, "Can"+v+r)
		}
	}
	return e
}

func TestGoldenPayment(t *testing.T) {
	a, err := Generate(&ir.Model{Enums: []ir.EnumSpec{paymentEnum}}, Options{Source: "payment.yaml"})
	require.NoError(t, err)
	assertGolden(t, "payment", a.Code)

	manifest, err := MarshalManifest(a)
	require.NoError(t, err)
	assertGolden(t, "payment_manifest", manifest)
}

func TestGoldenMultipleEnums(t *testing.T) {
	m := &ir.Model{Enums: []ir.EnumSpec{paymentEnum, shippingEnum}}
	a, err := Generate(m, Options{Package: "orders"})
	require.NoError(t, err)
	assertGolden(t, "multi", a.Code)
}

func TestGoldenWide(t *testing.T) {
	m := &ir.Model{Enums: []ir.EnumSpec{permissionEnum()}}
	a, err := Generate(m, Options{Source: "permissions.yaml"})
	require.NoError(t, err)
	assertGolden(t, "wide", a.Code)
}
