package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestParseDispatchesBySupplier(t *testing.T) {
	p := New(nil)

	aks := "American Key Supply\nCR-XHS-XNBU01EN Xhorse Wireless Flip Remote Key Buick Style 4 Buttons $12.59 4 $50.36"
	res := p.Parse(aks)
	require.Equal(t, constants.SupplierAKS, res.Supplier)
	require.Len(t, res.Items, 1)
	require.Equal(t, "CR-XHS-XNBU01EN", res.Items[0].SKU)

	island := "Transponder Island\nTI-4D60-40BIT Texas 4D60 Transponder Chip 80-Bit 10 $3.25 $32.50"
	res = p.Parse(island)
	require.Equal(t, constants.SupplierIsland, res.Supplier)
	require.Len(t, res.Items, 1)

	uhs := "UHS Hardware\nFord Remote Shell 3 Button\n$4.50\nSKU: RS-FRD-3B\nx3"
	res = p.Parse(uhs)
	require.Equal(t, constants.SupplierUHS, res.Supplier)
	require.Len(t, res.Items, 1)
	require.Equal(t, constants.SupplierUHS.String(), res.Items[0].Supplier)
}

func TestParseGenericFallbackPrefersLabelAnchored(t *testing.T) {
	// Text matches both the label-anchored and the loose generic pattern
	// (no xN marker, so detection stays generic). The label-anchored result
	// wins and the loose pattern is never consulted.
	text := strings.Join([]string{
		"WIDGET-12345 Basic Cabinet Cam Lock $4.00 2",
		"Schlage Deadbolt Cylinder",
		"$11.00",
		"SKU: SCH-DB-C123",
	}, "\n")

	res := New(nil).Parse(text)
	require.Equal(t, constants.SupplierGeneric, res.Supplier)
	require.Len(t, res.Items, 1)
	require.Equal(t, "SCH-DB-C123", res.Items[0].SKU)
	require.Equal(t, 1, res.Items[0].Quantity) // label-anchored default, not the loose line's 2
	require.InDelta(t, 11.00, res.Items[0].UnitPrice, 1e-9)
}

func TestParseGenericFallbackToLoosePattern(t *testing.T) {
	text := strings.Join([]string{
		"Acme Industrial Supply",
		"WIDGET-12345 Basic Cabinet Cam Lock $4.00 2",
	}, "\n")

	res := New(nil).Parse(text)
	require.Equal(t, constants.SupplierGeneric, res.Supplier)
	require.Len(t, res.Items, 1)
	require.Equal(t, "WIDGET-12345", res.Items[0].SKU)
	require.Equal(t, constants.SupplierGeneric.String(), res.Items[0].Supplier)
}

func TestParseNeverFails(t *testing.T) {
	p := New(nil)
	for _, text := range []string{
		"",
		"   \n \t \n",
		"completely unrelated prose about locksmithing",
		"\x00\x01binary\xfe\xff",
	} {
		res := p.Parse(text)
		require.Equal(t, constants.SupplierGeneric, res.Supplier)
		require.Empty(t, res.Items)
	}
}

func TestParseTotalValue(t *testing.T) {
	text := "American Key Supply\n" +
		"CR-XHS-XNBU01EN Xhorse Wireless Flip Remote Key Buick Style 4 Buttons $12.59 4 $50.36\n" +
		"TL-LISHI-HU100 Lishi 2-in-1 Pick HU100 $34.95 1 $34.95"
	res := New(nil).Parse(text)
	require.Len(t, res.Items, 2)
	require.InDelta(t, 12.59*4+34.95, res.TotalValue(), 1e-9)
}
