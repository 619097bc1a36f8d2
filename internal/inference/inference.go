// Package inference derives coarse product attributes from SKUs and free-text
// descriptions. Everything here is a fixed lookup with deterministic
// first-match priority; no learning, no persistence.
package inference

import (
	"strings"

	"github.com/lockshop/invoicer/constants"
)

// CategoryFromSKUPrefix maps the text before the first dash of a SKU to a
// category. Unknown prefixes (and dashless SKUs) map to Other.
func CategoryFromSKUPrefix(sku string) string {
	prefix, _, found := strings.Cut(strings.TrimSpace(sku), "-")
	if !found {
		return constants.CategoryOther
	}
	if cat, ok := constants.SKUPrefixCategories[strings.ToUpper(prefix)]; ok {
		return cat
	}
	return constants.CategoryOther
}

// keyTypeKeywords is checked in order; the first description hit wins.
var keyTypeKeywords = []struct {
	keywords []string
	keyType  string
}{
	{[]string{"remote", "fob"}, "Remote"},
	{[]string{"transponder", "chip"}, "Transponder"},
	{[]string{"blade"}, "Blade"},
	{[]string{"shell"}, "Shell"},
}

// InferKeyType guesses a key type from a free-text description. Used by the
// bulk-import path when no SKU prefix is available.
func InferKeyType(description string) string {
	lowered := strings.ToLower(description)
	for _, entry := range keyTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.keyType
			}
		}
	}
	return "Other"
}

// vehicleMakes is checked in order; earlier makes win ties.
var vehicleMakes = []string{
	"Toyota", "Honda", "Ford", "Chevrolet", "Nissan", "Hyundai", "Kia",
	"Dodge", "Chrysler", "Jeep", "GMC", "Buick", "Cadillac", "Lexus",
	"Acura", "Mazda", "Subaru", "Volkswagen", "BMW", "Mercedes",
}

// InferMake guesses a vehicle make from a free-text description, or "n/a".
func InferMake(description string) string {
	lowered := strings.ToLower(description)
	for _, name := range vehicleMakes {
		if strings.Contains(lowered, strings.ToLower(name)) {
			return name
		}
	}
	return "n/a"
}
