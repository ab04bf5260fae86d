// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/model"
)

// NewSimpleDocument creates a minimal OAS 3.1 document for testing.
// Contains only required fields: openapi, info, paths.
func NewSimpleDocument() *model.OpenAPI {
	return &model.OpenAPI{
		OpenAPI: "3.1.0",
		Info: &model.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Paths: &model.Paths{},
	}
}

// NewDetailedDocument creates an OAS 3.1 document with common features for
// testing: two operations on /pets, a Pet schema, an Error response, an
// API key scheme and a tag.
func NewDetailedDocument() *model.OpenAPI {
	doc := NewSimpleDocument()

	items := model.TypedSchema("array")
	items.Set(model.KeywordItems, model.RefSchema("#/components/schemas/Pet"))
	list := NewOperation("listPets", "200", "A list of pets")
	list.Responses.Codes.Value("200").Content = model.MapOf(
		model.P("application/json", &model.MediaType{Schema: items}),
	)
	list.Responses.Default = &model.APIResponse{Ref: "#/components/responses/Error"}
	list.Tags = []string{"pets"}

	create := NewOperation("createPet", "201", "Created")
	create.Security = []*model.SecurityRequirement{model.NewSecurityRequirement("apiKey")}

	doc.Paths.Set("/pets", &model.PathItem{Get: list, Post: create})

	pet := model.TypedSchema("object")
	pet.SetProperty("id", model.TypedSchema("integer"))
	pet.SetProperty("name", model.TypedSchema("string"))
	pet.Set(model.KeywordRequired, []string{"id", "name"})

	doc.Components = &model.Components{
		Schemas: model.MapOf(model.P("Pet", pet)),
		Responses: model.MapOf(model.P("Error", &model.APIResponse{
			Description: "Unexpected error",
		})),
		SecuritySchemes: model.MapOf(model.P("apiKey", &model.SecurityScheme{
			Type: "apiKey",
			Name: "X-API-Key",
			In:   "header",
		})),
	}
	doc.Tags = []*model.Tag{{Name: "pets", Description: "Pet operations"}}
	return doc
}

// NewOperation creates an operation with one response.
func NewOperation(operationID, status, description string) *model.Operation {
	responses := &model.Responses{}
	responses.Set(status, &model.APIResponse{Description: description})
	return &model.Operation{
		OperationID: operationID,
		Responses:   responses,
	}
}

// WriteTempFile writes content to name in a temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempYAML marshals v to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}
