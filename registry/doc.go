// Package registry maps type identities to named schema components.
//
// An annotation scanner calls [Registry.Register] with the identity of a
// type and the schema built for it. The first call stores the schema under
// a component name and every call returns a reference schema:
//
//	reg, _ := registry.New(doc.Components)
//	ref := reg.Register(registry.TypeID{Package: "acme/models", Name: "User"}, userSchema)
//	// ref is {"$ref": "#/components/schemas/User"}
//
// # Naming
//
// Names come from [TypeID.SimpleName] by default. [WithNaming] selects
// another built-in strategy and [WithNamingFunc] installs a custom one.
// When a name is already taken by a different type, the registry appends
// the first free numeric suffix: User, User1, User2, and so on. With
// [WithDeduplicate], a colliding type whose schema is structurally
// equivalent to the existing component reuses it instead.
//
// # Inline schemas
//
// Anonymous types, and every type once [WithReferencesEnabled] is false,
// are never registered: Register returns their schema unchanged.
//
// A Registry is scoped to one assembly. All methods lock a single mutex, so
// concurrent scans sharing one registry cannot assign a name twice.
package registry
