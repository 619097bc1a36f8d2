package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestExtractAKSSingleLine(t *testing.T) {
	text := "CR-XHS-XNBU01EN Xhorse Wireless Flip Remote Key Buick Style 4 Buttons $12.59 4 $50.36"

	items := extractAKS(text)
	require.Len(t, items, 1)

	it := items[0]
	require.Equal(t, "CR-XHS-XNBU01EN", it.SKU)
	require.Equal(t, "Xhorse Wireless Flip Remote Key Buick Style 4 Buttons", it.Description)
	require.InDelta(t, 12.59, it.UnitPrice, 1e-9)
	require.Equal(t, 4, it.Quantity)
	require.InDelta(t, 50.36, it.LineTotal, 1e-9)
	require.Equal(t, constants.CategoryCompleteRemote, it.Category)
	require.Equal(t, constants.SupplierAKS.String(), it.Supplier)
}

func TestExtractAKSMultiLine(t *testing.T) {
	text := strings.Join([]string{
		"ITEM",
		"KB-HU66-10",
		"High Security Key Blade",
		"VW  Audi HU66   Ten Pack",
		"$22.00 10 $220.00",
		"CR-XHS-XNBU01EN Xhorse Wireless Flip Remote Key Buick Style 4 Buttons $12.59 4 $50.36",
	}, "\n")

	items := extractAKS(text)
	require.Len(t, items, 2)

	// Description lines are space-joined and whitespace-normalized.
	require.Equal(t, "KB-HU66-10", items[0].SKU)
	require.Equal(t, "High Security Key Blade VW Audi HU66 Ten Pack", items[0].Description)
	require.InDelta(t, 22.00, items[0].UnitPrice, 1e-9)
	require.Equal(t, 10, items[0].Quantity)
	require.InDelta(t, 220.00, items[0].LineTotal, 1e-9)
	require.Equal(t, constants.CategoryKeyBlade, items[0].Category)

	// The scan resumed after the consumed total line and still found the
	// single-line record that follows it.
	require.Equal(t, "CR-XHS-XNBU01EN", items[1].SKU)
}

func TestExtractAKSHeaderLinesSkipped(t *testing.T) {
	text := strings.Join([]string{
		"SKU",
		"DESCRIPTION",
		"Unit Price",
		"QTY",
		"TOTAL",
		"TL-LISHI-HU100 Lishi 2-in-1 Pick HU100 $34.95 1 $34.95",
	}, "\n")

	items := extractAKS(text)
	require.Len(t, items, 1)
	require.Equal(t, "TL-LISHI-HU100", items[0].SKU)
	require.Equal(t, constants.CategoryTool, items[0].Category)
}

func TestExtractAKSLookaheadExhausted(t *testing.T) {
	// A SKU with no price/qty/total line inside the lookahead window is
	// discarded entirely; no partial records.
	lines := []string{"KS-HON-72"}
	for i := 0; i < 12; i++ {
		lines = append(lines, "wrapped description noise")
	}
	lines = append(lines, "$5.00 1 $5.00")

	items := extractAKS(strings.Join(lines, "\n"))
	require.Empty(t, items)
}

func TestExtractAKSGarbageInput(t *testing.T) {
	for _, text := range []string{
		"",
		"   \n\n\t\n",
		"complete nonsense with no skus at all",
		"\x00\x01\x02 binary noise \xff",
		"$12.59 4 $50.36", // totals with no SKU anchor
	} {
		require.Empty(t, extractAKS(text))
	}
}
