package constants

// Inventory categories derived from SKU prefixes. The prefix is everything
// before the first dash in a supplier SKU (e.g. "CR-XHS-XNBU01EN" -> "CR").
const (
	CategoryCompleteRemote = "Complete Remote/Key"
	CategoryKeyBlade       = "Key Blade"
	CategoryKeyShell       = "Key Shell"
	CategoryAccessoryChip  = "Accessory/Chip"
	CategoryRemoteShell    = "Remote Shell"
	CategoryTransponderKey = "Transponder Key"
	CategoryTool           = "Tool"
	CategoryOther          = "Other"

	// CategoryTransponderKeys is the stocking default for Transponder Island
	// line items, which are overwhelmingly transponder products.
	CategoryTransponderKeys = "Transponder Keys"

	// CategoryUncategorized is the default for items pulled out by the loose
	// generic extractor, where the SKU prefix carries no meaning.
	CategoryUncategorized = "Uncategorized"
)

// SKUPrefixCategories maps known SKU prefixes to their category.
var SKUPrefixCategories = map[string]string{
	"CR":  CategoryCompleteRemote,
	"KB":  CategoryKeyBlade,
	"KS":  CategoryKeyShell,
	"ACC": CategoryAccessoryChip,
	"RS":  CategoryRemoteShell,
	"TK":  CategoryTransponderKey,
	"TL":  CategoryTool,
}
