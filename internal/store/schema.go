package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskListSchema describes the persisted task collection: a JSON array of
// task objects with a closed priority enumeration and nullable completed_at.
const taskListSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "priority", "completed", "created_at"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "priority": {"enum": ["high", "medium", "low"]},
      "completed": {"type": "boolean"},
      "created_at": {"type": "string"},
      "completed_at": {"type": ["string", "null"]}
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(taskListSchema)); err != nil {
		panic(fmt.Sprintf("add task list schema: %v", err))
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile task list schema: %v", err))
	}
	return schema
}

// validateAgainstSchema checks raw store bytes against the task list schema.
// Returns a schema or syntax error, or nil when the document is well formed.
func validateAgainstSchema(data []byte) error {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema violation: %s", flattenSchemaError(ve))
		}
		return err
	}
	return nil
}

// flattenSchemaError picks the most specific leaf message from a nested
// jsonschema validation error.
func flattenSchemaError(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, ve.Message)
}
