package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oaskit/model"
)

func TestRefCollector_Positions(t *testing.T) {
	schema := model.TypedSchema("object")
	schema.SetProperty("owner", model.RefSchema("#/components/schemas/User"))
	schema.Set(model.KeywordItems, model.RefSchema("#/components/schemas/Pet/properties/id"))
	schema.Set(model.KeywordDiscriminator, &model.Discriminator{
		PropertyName: "kind",
		Mapping: model.MapOf(
			model.P("cat", "#/components/schemas/Cat"),
			model.P("dog", "Dog"),
			model.P("ext", "https://example.com/schemas/Bird.json"),
		),
	})

	op := &model.Operation{
		Parameters:  []*model.Parameter{{Ref: "#/components/parameters/Limit"}},
		RequestBody: &model.RequestBody{Ref: "#/components/requestBodies/NewPet"},
		Responses: &model.Responses{
			Default: &model.APIResponse{Ref: "#/components/responses/Error"},
			Codes: model.MapOf(model.P("200", &model.APIResponse{
				Content: model.MapOf(model.P("application/json", &model.MediaType{Schema: schema})),
				Headers: model.MapOf(model.P("X-Rate", &model.Header{Ref: "#/components/headers/Rate"})),
				Links:   model.MapOf(model.P("next", &model.Link{Ref: "#/components/links/Next"})),
			})),
		},
		Callbacks: model.MapOf(model.P("onEvent", &model.Callback{Ref: "#/components/callbacks/Event"})),
		Security:  []*model.SecurityRequirement{model.NewSecurityRequirement("apiKey")},
	}
	paths := &model.Paths{}
	paths.Set("/pets", &model.PathItem{Get: op})
	paths.Set("/shared", &model.PathItem{Ref: "#/components/pathItems/Shared"})
	doc := &model.OpenAPI{Paths: paths}

	c := NewRefCollector()
	c.Collect(doc)

	assert.Equal(t, []ComponentKey{
		{model.CategorySchemas, "Cat"},
		{model.CategorySchemas, "Dog"},
		{model.CategorySchemas, "Pet"},
		{model.CategorySchemas, "User"},
		{model.CategoryResponses, "Error"},
		{model.CategoryParameters, "Limit"},
		{model.CategoryRequestBodies, "NewPet"},
		{model.CategoryHeaders, "Rate"},
		{model.CategorySecuritySchemes, "apiKey"},
		{model.CategoryLinks, "Next"},
		{model.CategoryCallbacks, "Event"},
		{model.CategoryPathItems, "Shared"},
	}, c.Keys())
}

func TestRefCollector_IgnoresMismatchedAndExternal(t *testing.T) {
	op := &model.Operation{
		Parameters: []*model.Parameter{
			{Ref: "#/components/schemas/Limit"},
			{Ref: "other.yaml#/components/parameters/Limit"},
			{Ref: "#/components/unknown/Limit"},
		},
	}
	c := NewRefCollector()
	c.CollectNode(op)
	assert.Empty(t, c.Keys())
}

func TestRefCollector_CountAndRelease(t *testing.T) {
	a := model.RefSchema("#/components/schemas/A")
	b := model.TypedSchema("array")
	b.Set(model.KeywordItems, model.RefSchema("#/components/schemas/A"))

	c := NewRefCollector()
	c.CollectNode(a)
	c.CollectNode(b)
	assert.Equal(t, 2, c.Count(model.CategorySchemas, "A"))

	c.Release(b)
	assert.Equal(t, 1, c.Count(model.CategorySchemas, "A"))
	c.Release(a)
	assert.Equal(t, 0, c.Count(model.CategorySchemas, "A"))
	assert.Empty(t, c.Referenced(model.CategorySchemas))
}

func TestRefCollector_EscapedNames(t *testing.T) {
	c := NewRefCollector()
	c.CollectNode(model.RefSchema("#/components/schemas/a~1b"))
	c.CollectNode(model.RefSchema("#/components/schemas/Page%5BUser%5D"))
	assert.Equal(t, []string{"Page[User]", "a/b"}, c.Referenced(model.CategorySchemas))
}
