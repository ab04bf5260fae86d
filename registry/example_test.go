package registry_test

import (
	"fmt"

	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/registry"
)

func Example() {
	doc := &model.OpenAPI{Components: &model.Components{}}
	reg, err := registry.New(doc.Components)
	if err != nil {
		fmt.Println(err)
		return
	}

	user := registry.TypeID{Package: "github.com/acme/shop/models", Name: "User"}
	legacy := registry.TypeID{Package: "github.com/acme/shop/legacy", Name: "User"}

	fmt.Println(reg.Register(user, model.TypedSchema("object")).Ref())
	fmt.Println(reg.Register(user, model.TypedSchema("object")).Ref())
	fmt.Println(reg.Register(legacy, model.TypedSchema("string")).Ref())
	fmt.Println(doc.Components.Schemas.Keys())
	// Output:
	// #/components/schemas/User
	// #/components/schemas/User
	// #/components/schemas/User1
	// [User User1]
}
