package store

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema describes the shape of the state held by the cell.
func (c *Cell[S]) Schema() *jsonschema.Schema {
	return TypeToSchema(reflect.TypeOf((*S)(nil)).Elem())
}

// SchemaJSON is Schema rendered as JSON.
func (c *Cell[S]) SchemaJSON() ([]byte, error) {
	return json.Marshal(c.Schema())
}

// TypeToSchema converts a reflect.Type to a JSON schema. Structs are
// expanded at the root and nothing is emitted as a $ref.
func TypeToSchema(t reflect.Type) *jsonschema.Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	reflector := jsonschema.Reflector{
		ExpandedStruct:            t.Kind() == reflect.Struct,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	return reflector.ReflectFromType(t)
}
