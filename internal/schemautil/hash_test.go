package schemautil

import (
	"testing"

	"github.com/erraggy/oaskit/model"
)

func person() *model.Schema {
	s := model.TypedSchema("object")
	s.Set(model.KeywordTitle, "Person")
	s.SetProperty("name", model.TypedSchema("string"))
	age := model.TypedSchema("integer")
	age.Set(model.KeywordFormat, "int32")
	s.SetProperty("age", age)
	s.Set(model.KeywordRequired, []string{"name", "age"})
	return s
}

func TestSchemaHasher_Hash_Consistency(t *testing.T) {
	hasher := NewSchemaHasher()
	schema := person()

	hash1 := hasher.Hash(schema)
	hash2 := hasher.Hash(schema)
	if hash1 != hash2 {
		t.Errorf("Hash is not consistent: %d != %d", hash1, hash2)
	}
}

func TestSchemaHasher_Hash_IgnoresMetadataAndOrder(t *testing.T) {
	hasher := NewSchemaHasher()

	other := model.TypedSchema("object")
	other.Set(model.KeywordDescription, "someone")
	age := model.TypedSchema("integer")
	age.Set(model.KeywordFormat, "int32")
	age.Set(model.KeywordExample, 42)
	other.SetProperty("age", age)
	other.SetProperty("name", model.TypedSchema("string"))
	other.Set(model.KeywordRequired, []string{"age", "name"})
	other.Set("x-go-type", "Person")

	if hasher.Hash(person()) != hasher.Hash(other) {
		t.Error("schemas differing only in metadata and order should hash alike")
	}
	if !Equivalent(person(), other) {
		t.Error("schemas differing only in metadata and order should be equivalent")
	}
}

func TestSchemaHasher_Hash_Differences(t *testing.T) {
	hasher := NewSchemaHasher()
	base := hasher.Hash(person())

	tests := []struct {
		name   string
		mutate func(s *model.Schema)
	}{
		{"format", func(s *model.Schema) { s.Properties().Value("age").Set(model.KeywordFormat, "int64") }},
		{"required", func(s *model.Schema) { s.Set(model.KeywordRequired, []string{"name"}) }},
		{"extra property", func(s *model.Schema) { s.SetProperty("email", model.TypedSchema("string")) }},
		{"additionalProperties", func(s *model.Schema) {
			s.Set(model.KeywordAdditionalProperties, model.NewBoolSchema(false))
		}},
		{"ref", func(s *model.Schema) { s.Set(model.KeywordRef, "#/components/schemas/Other") }},
		{"discriminator", func(s *model.Schema) {
			s.Set(model.KeywordDiscriminator, &model.Discriminator{PropertyName: "kind"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := person()
			tt.mutate(s)
			if hasher.Hash(s) == base {
				t.Errorf("expected a different hash after changing %s", tt.name)
			}
			if Equivalent(person(), s) {
				t.Errorf("expected schemas to differ after changing %s", tt.name)
			}
		})
	}
}

func TestSchemaHasher_Hash_BoolSchemas(t *testing.T) {
	hasher := NewSchemaHasher()
	if hasher.Hash(model.NewBoolSchema(true)) == hasher.Hash(model.NewBoolSchema(false)) {
		t.Error("true and false schemas should hash differently")
	}
	if hasher.Hash(model.NewBoolSchema(true)) == hasher.Hash(model.NewSchema()) {
		t.Error("true and {} are different schema forms")
	}
}

func TestSchemaHasher_Hash_Circular(t *testing.T) {
	s := model.TypedSchema("object")
	s.SetProperty("self", s)

	hasher := NewSchemaHasher()
	if hasher.Hash(s) == 0 {
		t.Error("expected a hash for a self-referencing schema")
	}
}

func TestSchemaHasher_GroupByHash(t *testing.T) {
	schemas := model.MapOf(
		model.P("A", person()),
		model.P("B", model.TypedSchema("string")),
		model.P("C", person()),
	)
	groups := NewSchemaHasher().GroupByHash(schemas)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	for _, names := range groups {
		if len(names) == 2 && (names[0] != "A" || names[1] != "C") {
			t.Errorf("expected [A C], got %v", names)
		}
	}
}

func TestNormalize_DoesNotModify(t *testing.T) {
	s := person()
	_ = Normalize(s)
	if s.Title() != "Person" {
		t.Error("Normalize must work on a copy")
	}
	if got := s.Required(); got[0] != "name" {
		t.Errorf("required order changed: %v", got)
	}
}
