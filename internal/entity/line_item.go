package entity

import "github.com/lockshop/invoicer/constants"

// LineItem represents one extracted invoice line for data transfer between layers.
// Values live only for the duration of a parse/review cycle; reconciliation
// translates them into inventory rows.
type LineItem struct {
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	// LineTotal is the parsed "$total" token when the source format carries
	// one, otherwise UnitPrice*Quantity. Callers must not assume it equals
	// UnitPrice*Quantity exactly.
	LineTotal float64 `json:"line_total"`
	Supplier  string  `json:"supplier"`
	Category  string  `json:"category"`
}

// InvoiceParseResult aggregates one invoice parse.
type InvoiceParseResult struct {
	Supplier constants.Supplier `json:"supplier"`
	Items    []LineItem         `json:"items"`
}

// TotalValue sums unit price times quantity across items. Derived, not stored.
func (r InvoiceParseResult) TotalValue() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
