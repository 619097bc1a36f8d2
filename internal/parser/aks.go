package parser

import (
	"regexp"
	"strings"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/inference"
)

// American Key Supply invoices anchor each record on a prefixed SKU
// (CR-/KB-/KS-/ACC-/RS-/TK-/TL-). Two shapes occur in the extracted text:
//
//	CR-XHS-XNBU01EN Xhorse Wireless Flip Remote ... $12.59 4 $50.36
//
// or the SKU alone on its own line, description fragments wrapped across the
// next few lines, and a closing "$price qty $total" line.
var (
	reAKSSingleLine = regexp.MustCompile(`^((?:CR|KB|KS|ACC|RS|TK|TL)-[A-Z0-9][A-Z0-9-]*)\s+(.+?)\s+\$(\d[\d,]*(?:\.\d+)?)\s+(\d{1,4})\s+\$(\d[\d,]*(?:\.\d+)?)$`)
	reAKSSKUStart   = regexp.MustCompile(`^((?:CR|KB|KS|ACC|RS|TK|TL)-[A-Z0-9][A-Z0-9-]*)\b`)
	reAKSTotalLine  = regexp.MustCompile(`^\$(\d[\d,]*(?:\.\d+)?)\s+(\d{1,4})\s+\$(\d[\d,]*(?:\.\d+)?)$`)
)

// Bounded lookahead for wrapped descriptions. Exhausting the window without a
// price/qty/total line discards the record; no partials are emitted.
const aksLookahead = 10

// Column headers repeated on every page of an AKS invoice. Compared
// case-insensitively against whole normalized lines.
var aksHeaderLines = map[string]struct{}{
	"item":        {},
	"sku":         {},
	"description": {},
	"price":       {},
	"unit price":  {},
	"qty":         {},
	"quantity":    {},
	"total":       {},
	"line total":  {},
	"amount":      {},
}

func isAKSHeaderLine(line string) bool {
	_, ok := aksHeaderLines[strings.ToLower(line)]
	return ok
}

func extractAKS(text string) []entity.LineItem {
	lines := splitLines(text)
	var items []entity.LineItem

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if isAKSHeaderLine(line) {
			continue
		}

		if m := reAKSSingleLine.FindStringSubmatch(line); m != nil {
			price, okP := parsePrice(m[3])
			qty, okQ := parseQty(m[4])
			total, okT := parsePrice(m[5])
			desc := normalizeLine(m[2])
			if !okP || !okQ || !okT || desc == "" {
				continue
			}
			items = append(items, entity.LineItem{
				SKU:         m[1],
				Description: desc,
				UnitPrice:   price,
				Quantity:    qty,
				LineTotal:   total,
				Supplier:    constants.SupplierAKS.String(),
				Category:    inference.CategoryFromSKUPrefix(m[1]),
			})
			continue
		}

		m := reAKSSKUStart.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sku := m[1]
		var parts []string
		if rest := normalizeLine(line[len(m[0]):]); rest != "" {
			parts = append(parts, rest)
		}

		end := -1
		var price, total float64
		var qty int
		for j := i + 1; j < len(lines) && j <= i+aksLookahead; j++ {
			if tm := reAKSTotalLine.FindStringSubmatch(lines[j]); tm != nil {
				p, okP := parsePrice(tm[1])
				q, okQ := parseQty(tm[2])
				t, okT := parsePrice(tm[3])
				if okP && okQ && okT {
					price, qty, total = p, q, t
					end = j
				}
				break
			}
			if isAKSHeaderLine(lines[j]) {
				continue
			}
			parts = append(parts, lines[j])
		}
		if end < 0 {
			continue
		}

		// Consume through the total line; never re-scan claimed lines.
		i = end

		desc := normalizeLine(strings.Join(parts, " "))
		if desc == "" {
			continue
		}
		items = append(items, entity.LineItem{
			SKU:         sku,
			Description: desc,
			UnitPrice:   price,
			Quantity:    qty,
			LineTotal:   total,
			Supplier:    constants.SupplierAKS.String(),
			Category:    inference.CategoryFromSKUPrefix(sku),
		})
	}
	return items
}
