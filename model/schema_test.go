package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Type(t *testing.T) {
	s := NewSchema()
	assert.Nil(t, s.Type())

	s.Set(KeywordType, "string")
	assert.Equal(t, []string{"string"}, s.Type(), "a bare string is still read as a list")

	s.SetType("string", "null")
	assert.Equal(t, []string{"string", "null"}, s.Type())
	assert.True(t, s.Nullable())

	s.SetType()
	assert.False(t, s.Has(KeywordType))
}

func TestSchema_Nullable(t *testing.T) {
	s := NewSchema()
	assert.False(t, s.Nullable())
	s.Set(KeywordNullable, true)
	assert.True(t, s.Nullable())
}

func TestSchema_BooleanVariant(t *testing.T) {
	s := NewBoolSchema(true)
	v, ok := s.Bool()
	require.True(t, ok)
	assert.True(t, v)
	assert.False(t, s.IsEmpty())

	s.Set(KeywordTitle, "now an object")
	assert.False(t, s.IsBool())
	assert.Equal(t, "now an object", s.Title())
}

func TestSchema_Extensions(t *testing.T) {
	s := TypedSchema("string")
	s.Set("x-go-type", "uuid.UUID")
	s.Set("x-order", json.Number("1"))

	ext := s.ExtensionMap()
	require.NotNil(t, ext)
	assert.Equal(t, []string{"x-go-type", "x-order"}, ext.Keys())

	s.SetExtensionMap(MapOf(P[any]("x-other", "v")))
	assert.Equal(t, []string{"type", "x-other"}, s.Keywords())
}

func TestSchema_Reference(t *testing.T) {
	s := RefSchema("#/components/schemas/Pet")
	assert.Equal(t, "#/components/schemas/Pet", s.Reference())
	s.SetReference("")
	assert.True(t, s.IsEmpty())

	var r Referenceable = s
	r.SetReference("#/components/schemas/Cat")
	assert.Equal(t, "#/components/schemas/Cat", s.Ref())
}

func TestSchema_Accessors(t *testing.T) {
	s := TypedSchema("number")
	s.Set(KeywordMinimum, json.Number("0"))
	s.Set(KeywordExclusiveMaximum, json.Number("10"))
	s.Set(KeywordMaxLength, 5)
	s.Set(KeywordRequired, []string{"a"})
	s.Set(KeywordEnum, []any{json.Number("1"), json.Number("2")})

	minimum, ok := s.Minimum()
	require.True(t, ok)
	assert.Equal(t, json.Number("0"), minimum)

	_, ok = s.Maximum()
	assert.False(t, ok)

	exMax, ok := s.ExclusiveMaximum()
	require.True(t, ok)
	assert.Equal(t, json.Number("10"), exMax)

	n, ok := s.GetInt(KeywordMaxLength)
	require.True(t, ok)
	assert.Equal(t, 5, n)

	assert.Equal(t, []string{"a"}, s.Required())
	assert.Len(t, s.Enum(), 2)
}

func TestKeywordValueType(t *testing.T) {
	assert.Equal(t, ValueTypeList, KeywordValueType("type"))
	assert.Equal(t, ValueSchemaMap, KeywordValueType("properties"))
	assert.Equal(t, ValueSchema, KeywordValueType("additionalProperties"))
	assert.Equal(t, ValueRaw, KeywordValueType("x-anything"))
	assert.Equal(t, ValueRaw, KeywordValueType("unknownKeyword"))
	assert.True(t, Is31Keyword("prefixItems"))
	assert.False(t, Is31Keyword("items"))
}
