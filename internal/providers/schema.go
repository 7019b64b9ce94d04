package providers

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The payload schema is deliberately loose on value types: unit fields may
// arrive as numbers or strings and get coerced downstream. It exists to catch
// structurally wrong responses (no subjects array, rows that are not objects)
// before decoding.
const subjectsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["subjects"],
  "properties": {
    "subjects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "code": {"type": ["string", "null"]},
          "name": {"type": ["string", "null"]},
          "lecture_units": {"type": ["integer", "number", "string", "null"]},
          "lab_units": {"type": ["integer", "number", "string", "null"]},
          "total_units": {"type": ["integer", "number", "string", "null"]},
          "year_level": {"type": ["string", "null"]},
          "term": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledSubjectsSchema = jsonschema.MustCompileString("subjects.json", subjectsSchema)

// ValidatePayload checks a recognizer payload against the subjects schema.
func ValidatePayload(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode recognizer payload: %w", err)
	}
	if err := compiledSubjectsSchema.Validate(v); err != nil {
		return fmt.Errorf("recognizer payload has unexpected structure: %w", err)
	}
	return nil
}
