package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "count": {"type": "integer"}
  }
}`

func TestSchema_Validate(t *testing.T) {
	schema, err := CompileSchema([]byte(testSchema))
	require.NoError(t, err)

	result, err := schema.Validate([]byte(`{"name": "ok", "count": 2}`))
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.Empty(t, result.Errors)

	result, err = schema.Validate([]byte(`{"count": "two"}`))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	require.Contains(t, result.Details, "error")
}

func TestSchema_ValidateInvalidDocument(t *testing.T) {
	schema, err := CompileSchema([]byte(testSchema))
	require.NoError(t, err)

	_, err = schema.Validate([]byte(`{not json`))
	require.Error(t, err)
}

func TestCompileSchema_Invalid(t *testing.T) {
	_, err := CompileSchema([]byte(`{"type": 42}`))
	require.Error(t, err)
}
