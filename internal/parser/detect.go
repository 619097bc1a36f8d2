package parser

import (
	"regexp"
	"strings"

	"github.com/lockshop/invoicer/constants"
)

// signature ties a supplier id to the literal markers that identify its
// invoices. Order in the registry is the detection priority: earlier suppliers
// win when markers co-occur.
type signature struct {
	supplier constants.Supplier
	markers  []string
}

var signatures = []signature{
	{constants.SupplierAKS, []string{"american key supply", "americankeysupply"}},
	{constants.SupplierUHS, []string{"uhs hardware", "uhs-hardware", "uhshardware"}},
	{constants.SupplierIsland, []string{"transponder island", "transponderisland"}},
}

// Structural heuristic for UHS-style invoices whose extracted text lost the
// branding: a "SKU: <code>" label plus a standalone "xN" quantity marker.
var (
	reSKULabelAnywhere  = regexp.MustCompile(`(?i)\bsku:\s*[a-z0-9-]{3,}`)
	reQtyMarkerAnywhere = regexp.MustCompile(`(?im)^\s*x\d{1,4}\s*$`)
)

// DetectSupplier classifies an invoice text blob. Pure; never fails —
// unmatched text resolves to the generic sentinel.
func DetectSupplier(text string) constants.Supplier {
	lowered := strings.ToLower(text)
	for _, sig := range signatures {
		for _, m := range sig.markers {
			if strings.Contains(lowered, m) {
				return sig.supplier
			}
		}
	}
	if reSKULabelAnywhere.MatchString(text) && reQtyMarkerAnywhere.MatchString(text) {
		return constants.SupplierUHS
	}
	return constants.SupplierGeneric
}
