// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the JSON config file before it is unmarshalled,
// so a typo'd pattern name or a negative size fails with a pointed message
// instead of a half-applied configuration.
const configSchema = `{
  "type": "object",
  "properties": {
    "smallSizes": {
      "type": "array",
      "items": { "type": "integer", "minimum": 1 }
    },
    "largeSizes": {
      "type": "array",
      "items": { "type": "integer", "minimum": 1 }
    },
    "patterns": {
      "type": "array",
      "items": {
        "type": "string",
        "enum": ["random", "sorted", "reversed", "nearly_sorted"]
      }
    },
    "repeats": { "type": "integer", "minimum": 1 },
    "reportsDir": { "type": "string" },
    "noReadme": { "type": "boolean" },
    "debug": { "type": "boolean" },
    "logFile": { "type": "string" }
  },
  "additionalProperties": false
}`

// ValidateConfigJSON checks raw config file bytes against the embedded schema.
func ValidateConfigJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("config schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}
