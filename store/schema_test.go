package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSchema(t *testing.T) {
	cell := NewCell(counter{})

	schema := cell.Schema()
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)

	prop, ok := schema.Properties.Get("count")
	require.True(t, ok)
	assert.Equal(t, "integer", prop.Type)

	_, ok = schema.Properties.Get("label")
	assert.True(t, ok)
	assert.Equal(t, []string{"count"}, schema.Required)
}

func TestCellSchemaJSON(t *testing.T) {
	cell := NewCell(&counter{})

	raw, err := cell.SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "object", decoded["type"])
	assert.Contains(t, decoded["properties"], "count")
}

func TestTypeToSchemaNonStruct(t *testing.T) {
	schema := TypeToSchema(reflect.TypeOf(map[string]int{}))
	assert.Equal(t, "object", schema.Type)

	schema = TypeToSchema(reflect.TypeOf(0))
	assert.Equal(t, "integer", schema.Type)
}
