package tokens

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema kinds accepted by SchemaFor.
const (
	SchemaDocument  = "tokens"
	SchemaOverrides = "overrides"
)

// SchemaFor returns the JSON Schema for a token source document or an overrides file.
func SchemaFor(kind string) ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true

	var schema *jsonschema.Schema
	switch kind {
	case SchemaDocument, "":
		schema = reflector.Reflect(&Document{})
		schema.Title = "wex token source"
	case SchemaOverrides:
		schema = reflector.Reflect(&Overrides{})
		schema.Title = "wex theme overrides"
	default:
		return nil, fmt.Errorf("unknown schema %q (must be %q or %q)", kind, SchemaDocument, SchemaOverrides)
	}

	return json.MarshalIndent(schema, "", "  ")
}
