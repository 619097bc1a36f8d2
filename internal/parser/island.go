package parser

import (
	"regexp"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/entity"
)

// Transponder Island invoices serialize to clean single-line columns:
//
//	TI-4D60-CIRCLE Texas Instruments 4D60 Chip 10 $3.25 $32.50
//
// No multi-line records, no header noise worth special-casing. Unmatched
// lines are skipped.
var reIslandLine = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]{4,})\s+(.+?)\s+(\d{1,4})\s+\$(\d[\d,]*(?:\.\d+)?)\s+\$(\d[\d,]*(?:\.\d+)?)$`)

func extractIsland(text string) []entity.LineItem {
	lines := splitLines(text)
	var items []entity.LineItem
	for _, line := range lines {
		m := reIslandLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, okQ := parseQty(m[3])
		price, okP := parsePrice(m[4])
		total, okT := parsePrice(m[5])
		desc := normalizeLine(m[2])
		if !okQ || !okP || !okT || desc == "" {
			continue
		}
		items = append(items, entity.LineItem{
			SKU:         m[1],
			Description: desc,
			UnitPrice:   price,
			Quantity:    qty,
			LineTotal:   total,
			Supplier:    constants.SupplierIsland.String(),
			Category:    constants.CategoryTransponderKeys,
		})
	}
	return items
}
