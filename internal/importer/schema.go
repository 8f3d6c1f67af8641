package importer

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema a catalog file must satisfy before
// any row touches the database.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["words"],
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "slug"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "slug": {"type": "string", "minLength": 1, "pattern": "^[a-z][a-z0-9-]*$"}
        }
      }
    },
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["hanzi", "pinyin", "meaning", "category"],
        "properties": {
          "hanzi": {"type": "string", "minLength": 1},
          "pinyin": {"type": "string", "minLength": 1},
          "meaning": {"type": "string", "minLength": 1},
          "background": {"type": "string"},
          "category": {"type": "string", "minLength": 1},
          "origin_year": {"type": "integer", "minimum": 0},
          "origin_month": {"type": "integer", "minimum": 0, "maximum": 12},
          "popularity": {"type": "integer", "minimum": 0},
          "sentences": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["zh", "en"],
              "properties": {
                "zh": {"type": "string", "minLength": 1},
                "en": {"type": "string", "minLength": 1},
                "note": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// validateCatalog checks raw JSON against the catalog schema and
// returns a descriptive error on the first violation.
func validateCatalog(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal([]byte(catalogSchema), &schemaDoc); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("catalog file failed validation: %w", err)
	}
	return nil
}
