package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/internal/entity"
)

func TestValidateItems(t *testing.T) {
	valid := []entity.LineItem{
		{SKU: "CR-XHS-1", Description: "Flip Remote", UnitPrice: 12.59, Quantity: 4, LineTotal: 50.36, Supplier: "americankeysupply.com", Category: "Complete Remote/Key"},
	}
	require.NoError(t, ValidateItems(valid))

	// Quantity 0 is accepted; reconciliation treats it as "not provided".
	require.NoError(t, ValidateItems([]entity.LineItem{
		{SKU: "X-1", Description: "thing", UnitPrice: 1},
	}))
}

func TestValidateItemsRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
	}{
		{"empty batch", nil},
		{"missing sku", []entity.LineItem{{Description: "no sku", UnitPrice: 1}}},
		{"missing description", []entity.LineItem{{SKU: "X-1", UnitPrice: 1}}},
		{"negative price", []entity.LineItem{{SKU: "X-1", Description: "thing", UnitPrice: -0.01}}},
		{"negative quantity", []entity.LineItem{{SKU: "X-1", Description: "thing", UnitPrice: 1, Quantity: -2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ValidateItems(tt.items))
		})
	}
}
