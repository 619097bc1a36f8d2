package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lockshop/invoicer/internal/entity"
)

// BuildLineItemsJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// bulk-add payload. Items arrive human-edited from the review screen, so the
// shape is validated before any row is touched.
func BuildLineItemsJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"sku":         map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"unit_price":  map[string]any{"type": "number", "minimum": 0},
			// 0 means "not provided"; reconciliation defaults it to 1.
			"quantity":    map[string]any{"type": "integer", "minimum": 0},
			"line_total":  map[string]any{"type": "number", "minimum": 0},
			"supplier":    map[string]any{"type": "string"},
			"category":    map[string]any{"type": "string"},
		},
		"required": []string{"sku", "description", "unit_price"},
	}
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    item,
	}
}

var lineItemsSchema = mustCompile(BuildLineItemsJSONSchema())

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("line_items.json", bytes.NewReader(b)); err != nil {
		panic(err)
	}
	schema, err := compiler.Compile("line_items.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateItems checks a bulk-add payload against the line-items schema.
func ValidateItems(items []entity.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal items: %w", err)
	}
	if err := lineItemsSchema.Validate(v); err != nil {
		return fmt.Errorf("items do not match schema: %w", err)
	}
	return nil
}
