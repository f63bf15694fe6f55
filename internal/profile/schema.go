package profile

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// profilesSchema constrains the profiles file: every profile value must
// be an object, thresholds numeric and within range.
const profilesSchema = `{
  "type": "object",
  "properties": {
    "profiles": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "corr_threshold": {"type": "number", "minimum": 0, "maximum": 1},
          "corr_top_n": {"type": "integer", "minimum": 0},
          "outlier_multiplier": {"type": "number", "minimum": 0},
          "missing_alert_pct": {"type": "number", "minimum": 0, "maximum": 100},
          "outlier_alert_pct": {"type": "number", "minimum": 0, "maximum": 100},
          "categorical_levels": {"type": "integer", "minimum": 0},
          "show_full_correlation": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    }
  },
  "required": ["profiles"]
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func validateProfiles(doc map[string]interface{}) error {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("profiles.json", strings.NewReader(profilesSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("profiles.json")
	})
	if schemaErr != nil {
		return fmt.Errorf("profiles schema compile failed: %w", schemaErr)
	}
	// round-trip through JSON so yaml map types validate cleanly
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("profiles file not json-compatible: %w", err)
	}
	var jsonDoc interface{}
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return err
	}
	if err := compiledSchema.Validate(jsonDoc); err != nil {
		return fmt.Errorf("profiles file invalid: %w", err)
	}
	return nil
}
