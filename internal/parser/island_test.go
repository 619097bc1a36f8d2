package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestExtractIsland(t *testing.T) {
	text := strings.Join([]string{
		"Transponder Island",
		"Invoice #20441",
		"TI-4D60-40BIT Texas 4D60 Transponder Chip 80-Bit 10 $3.25 $32.50",
		"TI-PCF7936 Philips PCF7936 Crypto Chip 5 $4.10 $20.50",
		"Subtotal $53.00",
	}, "\n")

	items := extractIsland(text)
	require.Len(t, items, 2)

	require.Equal(t, "TI-4D60-40BIT", items[0].SKU)
	require.Equal(t, "Texas 4D60 Transponder Chip 80-Bit", items[0].Description)
	require.Equal(t, 10, items[0].Quantity)
	require.InDelta(t, 3.25, items[0].UnitPrice, 1e-9)
	require.InDelta(t, 32.50, items[0].LineTotal, 1e-9)
	require.Equal(t, constants.CategoryTransponderKeys, items[0].Category)
	require.Equal(t, constants.SupplierIsland.String(), items[0].Supplier)

	require.Equal(t, "TI-PCF7936", items[1].SKU)
	require.Equal(t, 5, items[1].Quantity)
}

func TestExtractIslandTotalPreservedVerbatim(t *testing.T) {
	// The parsed total is kept even when it disagrees with price*qty.
	text := "TI-4C-GLASS Texas 4C Glass Chip 3 $2.00 $5.99"
	items := extractIsland(text)
	require.Len(t, items, 1)
	require.InDelta(t, 5.99, items[0].LineTotal, 1e-9)
}

func TestExtractIslandGarbageInput(t *testing.T) {
	for _, text := range []string{"", "no columns here", "AB 1 $2 $3", "\x00\xff"} {
		require.Empty(t, extractIsland(text))
	}
}
