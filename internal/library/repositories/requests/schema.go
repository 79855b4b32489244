package requests

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/campusdesk/internal/library/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// stateSchema describes the state file.
func stateSchema() map[string]any {
	record := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"student":   map[string]any{"type": "string"},
			"book":      map[string]any{"type": "string", "minLength": 1},
			"priority":  map[string]any{"type": "integer", "minimum": models.MinPriority, "maximum": models.MaxPriority},
			"timestamp": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`},
		},
		"required": []string{"student", "book", "priority", "timestamp"},
	}
	return map[string]any{
		"type":  "array",
		"items": record,
	}
}

func compileStateSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(stateSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("book_requests.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("book_requests.json")
}

// validateState checks raw state bytes against the schema.
func validateState(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal state: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("state does not match schema: %w", err)
	}
	return nil
}
