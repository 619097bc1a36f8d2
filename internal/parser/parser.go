// Package parser turns raw invoice text (as produced by PDF extraction) into
// structured line items. Detection and extraction are pure functions of the
// text; each supplier format keeps its own extractor rather than sharing a
// grammar, because the layouts genuinely differ in their edge cases.
package parser

import (
	"log/slog"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/internal/entity"
)

type Parser struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse detects the supplier and runs the matching extractor. For unrecognized
// suppliers the label-anchored extractor runs first and the loose generic
// pattern only if it finds nothing: the generic pattern is prone to false
// positives (years, makes), while the label anchor is safe when it matches.
// Never fails; an invoice matching nothing yields an empty item list.
func (p *Parser) Parse(text string) entity.InvoiceParseResult {
	supplier := DetectSupplier(text)

	var items []entity.LineItem
	switch supplier {
	case constants.SupplierAKS:
		items = extractAKS(text)
	case constants.SupplierUHS:
		items = extractLabelAnchored(text, constants.SupplierUHS.String())
	case constants.SupplierIsland:
		items = extractIsland(text)
	default:
		items = extractLabelAnchored(text, constants.SupplierGeneric.String())
		if len(items) == 0 {
			items = extractGeneric(text)
		}
	}

	p.logger.Debug("invoice parsed", "supplier", supplier, "items", len(items))
	return entity.InvoiceParseResult{Supplier: supplier, Items: items}
}
