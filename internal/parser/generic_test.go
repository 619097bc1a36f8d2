package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestExtractGeneric(t *testing.T) {
	text := strings.Join([]string{
		"Acme Industrial Supply",
		"WIDGET-12345 Basic Cabinet Cam Lock $4.00 2",
		"FOB-GM-0042 GM Keyless Entry Fob $18.50 1",
	}, "\n")

	items := extractGeneric(text)
	require.Len(t, items, 2)

	require.Equal(t, "WIDGET-12345", items[0].SKU)
	require.Equal(t, "Basic Cabinet Cam Lock", items[0].Description)
	require.InDelta(t, 4.00, items[0].UnitPrice, 1e-9)
	require.Equal(t, 2, items[0].Quantity)
	require.InDelta(t, 8.00, items[0].LineTotal, 1e-9)
	require.Equal(t, constants.CategoryUncategorized, items[0].Category)
	require.Equal(t, constants.SupplierGeneric.String(), items[0].Supplier)

	require.Equal(t, "FOB-GM-0042", items[1].SKU)
	require.InDelta(t, 18.50, items[1].LineTotal, 1e-9)
}

func TestExtractGenericYearRangeGuard(t *testing.T) {
	text := strings.Join([]string{
		"2012-2021 Chevy Silverado Flip Key $9.99 3",
		"2012 - 2021",
		"FLIP-CHV-SIL Chevy Silverado Flip Key $9.99 3",
	}, "\n")

	items := extractGeneric(text)
	require.Len(t, items, 1)
	require.Equal(t, "FLIP-CHV-SIL", items[0].SKU)
}

func TestExtractGenericGarbageInput(t *testing.T) {
	for _, text := range []string{"", "    ", "just words", "$4.00 2"} {
		require.Empty(t, extractGeneric(text))
	}
}
