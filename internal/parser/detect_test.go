package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestDetectSupplierLiteralMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Supplier
	}{
		{"aks company name", "INVOICE\nAmerican Key Supply\n123 Main St", constants.SupplierAKS},
		{"aks domain", "order confirmation from americankeysupply.com", constants.SupplierAKS},
		{"uhs company name", "UHS Hardware\nOrder #99123", constants.SupplierUHS},
		{"uhs domain", "support@uhs-hardware.com", constants.SupplierUHS},
		{"island company name", "Transponder Island Inc.", constants.SupplierIsland},
		{"island domain", "www.transponderisland.com", constants.SupplierIsland},
		{"unknown", "Joe's Plumbing Supply\nInvoice 42", constants.SupplierGeneric},
		{"empty", "", constants.SupplierGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectSupplier(tt.text))
		})
	}
}

func TestDetectSupplierPriorityOrder(t *testing.T) {
	// Earlier-declared suppliers win when markers co-occur.
	text := "American Key Supply drop-ship via UHS Hardware"
	require.Equal(t, constants.SupplierAKS, DetectSupplier(text))
}

func TestDetectSupplierStructuralHeuristic(t *testing.T) {
	// Unbranded text with both a SKU: label and a standalone xN marker is
	// classified as the label-anchored supplier.
	text := "Deadbolt Cylinder\n$11.00\nSKU: SCH-DB-C123\nx2\n"
	require.Equal(t, constants.SupplierUHS, DetectSupplier(text))

	// Either signal alone is not enough.
	require.Equal(t, constants.SupplierGeneric, DetectSupplier("SKU: SCH-DB-C123\n$11.00"))
	require.Equal(t, constants.SupplierGeneric, DetectSupplier("Deadbolt Cylinder\nx2\n"))
}

func TestDetectSupplierIdempotent(t *testing.T) {
	text := "UHS Hardware\nSKU: ABC-123\nx4"
	first := DetectSupplier(text)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, DetectSupplier(text))
	}
}
