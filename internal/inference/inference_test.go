package inference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockshop/invoicer/constants"
)

func TestCategoryFromSKUPrefix(t *testing.T) {
	tests := []struct {
		sku      string
		expected string
	}{
		{"CR-XHS-XNBU01EN", constants.CategoryCompleteRemote},
		{"KB-1234", constants.CategoryKeyBlade},
		{"kb-1234", constants.CategoryKeyBlade}, // prefix match is case-insensitive
		{"KS-HON-2B", constants.CategoryKeyShell},
		{"ACC-CHIP-46", constants.CategoryAccessoryChip},
		{"RS-FRD-3B", constants.CategoryRemoteShell},
		{"TK-HON-4D", constants.CategoryTransponderKey},
		{"TL-LISHI-HU100", constants.CategoryTool},
		{"ZZ-999", constants.CategoryOther},
		{"NODASH", constants.CategoryOther},
		{"", constants.CategoryOther},
		{"  CR-1  ", constants.CategoryCompleteRemote},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, CategoryFromSKUPrefix(tt.sku), "sku %q", tt.sku)
	}
}

func TestInferKeyType(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"Xhorse Wireless Flip Remote Key Buick Style", "Remote"},
		{"GM Keyless Entry Fob", "Remote"},
		{"Texas 4D60 Transponder Chip 80-Bit", "Transponder"},
		{"Philips Crypto CHIP", "Transponder"},
		{"High Security Key Blade VW Audi HU66", "Blade"},
		{"Ford Key Shell 3 Button", "Shell"},
		{"Brass Padlock 40mm", "Other"},
		{"", "Other"},
		// "remote" outranks "shell" when both appear.
		{"Remote Shell 3 Button", "Remote"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, InferKeyType(tt.description), "description %q", tt.description)
	}
}

func TestInferMake(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"Toyota Camry Remote Head Key", "Toyota"},
		{"HONDA civic transponder", "Honda"},
		{"Flip key for volkswagen golf", "Volkswagen"},
		{"Universal key blank", "n/a"},
		{"", "n/a"},
		// Earlier makes win: Toyota is listed before Lexus.
		{"Toyota Lexus shared blade", "Toyota"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, InferMake(tt.description), "description %q", tt.description)
	}
}
