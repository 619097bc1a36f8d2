package constants

// Supplier identifies which vendor issued an invoice. Values are stable string
// ids (stored on inventory rows and import jobs as-is).
type Supplier string

const (
	SupplierAKS     Supplier = "americankeysupply.com"
	SupplierUHS     Supplier = "uhs-hardware.com"
	SupplierIsland  Supplier = "transponderisland.com"
	SupplierGeneric Supplier = "generic"
)

// KnownSuppliers lists every non-generic supplier in detection priority order.
// Earlier entries win when signatures co-occur.
var KnownSuppliers = []Supplier{
	SupplierAKS,
	SupplierUHS,
	SupplierIsland,
}

func (s Supplier) String() string { return string(s) }

// IsGeneric reports whether s is the fallback sentinel.
func (s Supplier) IsGeneric() bool { return s == SupplierGeneric || s == "" }
