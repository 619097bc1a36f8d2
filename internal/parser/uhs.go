package parser

import (
	"regexp"
	"strings"

	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/inference"
)

// UHS Hardware invoices label each record with a "SKU:" line. The description
// is the free text accumulated since the previous record, the quantity is a
// standalone "xN" marker near the SKU line, and the price token may sit above
// or below it depending on how the PDF columns serialized.
var (
	reUHSSKULabel  = regexp.MustCompile(`(?i)^sku:\s*([a-z0-9-]{3,})`)
	reUHSSKUPrefix = regexp.MustCompile(`(?i)^sku:\s*`)
	reUHSQtyLine   = regexp.MustCompile(`(?i)^x(\d{1,4})$`)
	reUHSPrice     = regexp.MustCompile(`\$(\d[\d,]*(?:\.\d+)?)`)
	reUHSQtyToken  = regexp.MustCompile(`(?i)\bx\d{1,4}\b`)
	reUHSOrdinal   = regexp.MustCompile(`(?i)^no\.?\s*\d*$`)
	reUHSPriceOnly = regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?`)
)

const (
	uhsQtyWindow  = 3 // lines scanned forward from the SKU line for "xN"
	uhsPriceBack  = 2 // price may serialize above the SKU line
	uhsPriceAhead = 4
)

// extractLabelAnchored implements the "SKU: / xN" format. The supplier label
// is a parameter because the orchestrator also runs this extractor against
// unrecognized invoices before resorting to the loose generic pattern.
func extractLabelAnchored(text, supplier string) []entity.LineItem {
	lines := splitLines(text)
	var items []entity.LineItem

	blockStart := 0
	for i := 0; i < len(lines); i++ {
		m := reUHSSKULabel.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		sku := m[1]
		rest := reUHSSKUPrefix.ReplaceAllString(lines[i], "")
		if isYearRange(sku) || isYearRange(rest) {
			// A fitment span captured as a SKU is noise, not a record.
			blockStart = i + 1
			continue
		}

		qty := 1
		for j := i; j < len(lines) && j <= i+uhsQtyWindow; j++ {
			if qm := reUHSQtyLine.FindStringSubmatch(lines[j]); qm != nil {
				if n, ok := parseQty(qm[1]); ok {
					qty = n
				}
				break
			}
		}

		var price *float64
		lo := i - uhsPriceBack
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < len(lines) && j <= i+uhsPriceAhead; j++ {
			if pm := reUHSPrice.FindStringSubmatch(lines[j]); pm != nil {
				if v, ok := parsePrice(pm[1]); ok {
					price = &v
					break
				}
			}
		}

		var parts []string
		for j := blockStart; j < i; j++ {
			l := lines[j]
			if reUHSOrdinal.MatchString(l) {
				continue
			}
			stripped := normalizeLine(reUHSQtyToken.ReplaceAllString(reUHSPriceOnly.ReplaceAllString(l, ""), ""))
			if stripped == "" {
				continue
			}
			parts = append(parts, stripped)
		}

		// Advance past this record whether or not it was usable, so a bad
		// block cannot poison the next one.
		blockStart = i + 1

		if price == nil || len(parts) == 0 {
			continue
		}
		items = append(items, entity.LineItem{
			SKU:         sku,
			Description: strings.Join(parts, " "),
			UnitPrice:   *price,
			Quantity:    qty,
			LineTotal:   *price * float64(qty),
			Supplier:    supplier,
			Category:    inference.CategoryFromSKUPrefix(sku),
		})
	}
	return items
}
