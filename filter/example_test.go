package filter_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/model"
)

func Example() {
	paths := &model.Paths{}
	paths.Set("/pets", &model.PathItem{
		Get:  &model.Operation{OperationID: "listPets", Responses: &model.Responses{Default: &model.APIResponse{Ref: "#/components/responses/Error"}}},
		Post: &model.Operation{OperationID: "internalCreatePet"},
	})
	doc := &model.OpenAPI{
		OpenAPI: "3.1.0",
		Paths:   paths,
		Components: &model.Components{
			Responses: model.MapOf(
				model.P("Error", &model.APIResponse{Description: "error"}),
				model.P("Legacy", &model.APIResponse{Description: "unused"}),
			),
		},
	}

	hideInternal := filter.Funcs{Operation: func(op *model.Operation) *model.Operation {
		if strings.HasPrefix(op.OperationID, "internal") {
			return nil
		}
		return op
	}}
	unused := filter.NewUnusedComponents()
	filter.Apply(doc, hideInternal, unused)

	fmt.Println(doc.Paths.Get("/pets").Post == nil)
	fmt.Println(doc.Components.Responses.Keys())
	for _, k := range unused.Removed() {
		fmt.Println("removed", k)
	}
	// Output:
	// true
	// [Error]
	// removed #/components/responses/Legacy
}
