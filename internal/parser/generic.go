package parser

import (
	"regexp"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/entity"
)

// Loosest pattern, used only as the last resort for unrecognized suppliers:
//
//	<code> <description> $<price> <qty>
//
// The code is 5-20 alphanumeric/dash characters starting alphanumeric, which
// is loose enough to swallow year spans ("2012-2021") — hence the same guard
// as the label-anchored extractor.
var reGenericLine = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]{4,19})\s+(.+?)\s+\$(\d[\d,]*(?:\.\d+)?)\s+(\d{1,4})$`)

func extractGeneric(text string) []entity.LineItem {
	lines := splitLines(text)
	var items []entity.LineItem
	for _, line := range lines {
		m := reGenericLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if isYearRange(m[1]) {
			continue
		}
		price, okP := parsePrice(m[3])
		qty, okQ := parseQty(m[4])
		desc := normalizeLine(m[2])
		if !okP || !okQ || desc == "" {
			continue
		}
		items = append(items, entity.LineItem{
			SKU:         m[1],
			Description: desc,
			UnitPrice:   price,
			Quantity:    qty,
			LineTotal:   price * float64(qty),
			Supplier:    constants.SupplierGeneric.String(),
			Category:    constants.CategoryUncategorized,
		})
	}
	return items
}
