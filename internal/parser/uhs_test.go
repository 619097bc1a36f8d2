package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func uhsExtract(text string) []string {
	items := extractLabelAnchored(text, constants.SupplierUHS.String())
	skus := make([]string, len(items))
	for i, it := range items {
		skus[i] = it.SKU
	}
	return skus
}

func TestExtractLabelAnchored(t *testing.T) {
	text := strings.Join([]string{
		"No. 1",
		"Ford Remote Shell 3 Button",
		"$4.50",
		"SKU: RS-FRD-3B",
		"x3",
		"No. 2",
		"Honda Transponder Key 4D",
		"$6.10",
		"SKU: TK-HON-4D",
		"x2",
	}, "\n")

	items := extractLabelAnchored(text, constants.SupplierUHS.String())
	require.Len(t, items, 2)

	require.Equal(t, "RS-FRD-3B", items[0].SKU)
	require.Equal(t, "Ford Remote Shell 3 Button", items[0].Description)
	require.InDelta(t, 4.50, items[0].UnitPrice, 1e-9)
	require.Equal(t, 3, items[0].Quantity)
	require.InDelta(t, 13.50, items[0].LineTotal, 1e-9)
	require.Equal(t, constants.CategoryRemoteShell, items[0].Category)

	require.Equal(t, "TK-HON-4D", items[1].SKU)
	require.Equal(t, "Honda Transponder Key 4D", items[1].Description)
	require.InDelta(t, 6.10, items[1].UnitPrice, 1e-9)
	require.Equal(t, 2, items[1].Quantity)
	require.InDelta(t, 12.20, items[1].LineTotal, 1e-9)
}

func TestExtractLabelAnchoredQuantityDefault(t *testing.T) {
	text := strings.Join([]string{
		"Kwikset SmartKey Cylinder",
		"$8.75",
		"SKU: KWK-SC-5",
	}, "\n")

	items := extractLabelAnchored(text, constants.SupplierUHS.String())
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
	require.InDelta(t, 8.75, items[0].LineTotal, 1e-9)
}

func TestExtractLabelAnchoredPriceBelowSKU(t *testing.T) {
	// Column serialization sometimes puts the price after the SKU line.
	text := strings.Join([]string{
		"Mul-T-Lock Cam Lock",
		"SKU: MTL-CAM-100",
		"x4",
		"$15.25",
	}, "\n")

	items := extractLabelAnchored(text, constants.SupplierUHS.String())
	require.Len(t, items, 1)
	require.InDelta(t, 15.25, items[0].UnitPrice, 1e-9)
	require.Equal(t, 4, items[0].Quantity)
}

func TestExtractLabelAnchoredYearRangeGuard(t *testing.T) {
	// A fitment span captured as a SKU must never become a record, whether
	// dashed tight or spaced.
	for _, sku := range []string{"2012-2021", "2012 - 2021"} {
		text := strings.Join([]string{
			"Chevy Tahoe Flip Key",
			"$9.99",
			"SKU: " + sku,
			"x1",
		}, "\n")
		require.Empty(t, uhsExtract(text))
	}
}

func TestExtractLabelAnchoredBadRecordDoesNotPoisonNext(t *testing.T) {
	// First block has no price anywhere in its window; second block must
	// still extract cleanly.
	text := strings.Join([]string{
		"Orphan Item With No Price",
		"SKU: ORPH-1",
		"noise line between blocks",
		"noise continues here",
		"noise keeps going",
		"Yale Padlock Brass 40mm",
		"$7.20",
		"SKU: YAL-PB-40",
		"x5",
	}, "\n")

	items := extractLabelAnchored(text, constants.SupplierUHS.String())
	require.Len(t, items, 1)
	require.Equal(t, "YAL-PB-40", items[0].SKU)
	require.Equal(t, 5, items[0].Quantity)
}

func TestExtractLabelAnchoredGarbageInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "no labels here", "SKU:", "SKU: ab"} {
		require.Empty(t, uhsExtract(text))
	}
}
