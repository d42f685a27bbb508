// internal/runtimes/schema.go
package runtimes

import (
	"github.com/xeipuuv/gojsonschema"
)

// manifestSchema is the structural contract for the raw manifest document.
// Field-level rules (image naming, size units, positive counts) are enforced
// by the typed decoders; the schema catches shape errors up front.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "runtimes": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["kind", "image"],
          "properties": {
            "kind": {"type": "string", "minLength": 1},
            "default": {"type": "boolean"},
            "image": {"$ref": "#/definitions/image"},
            "stemCells": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["count", "memory"],
                "properties": {
                  "count": {"type": "integer"},
                  "memory": {"type": "string"}
                }
              }
            }
          }
        }
      }
    },
    "blackboxes": {
      "type": "array",
      "items": {"$ref": "#/definitions/image"}
    },
    "defaultKind": {"type": "string"}
  },
  "definitions": {
    "image": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "prefix": {"type": "string"},
        "tag": {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(manifestSchema)

// validateSchema checks the raw document against manifestSchema before any
// decoding happens. Shape violations are format errors.
func validateSchema(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return formatErrorf("runtimes: manifest document is not valid JSON: %v", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return formatErrorf("runtimes: manifest document invalid at %s: %s", first.Field(), first.Description())
	}
	return nil
}
