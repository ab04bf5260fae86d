// Package assembly combines the partial models of an API into the final
// OpenAPI document.
//
// An assembly takes up to three models: the reader model built in code, the
// static model read from files, and the annotation model produced by a
// scanner. They merge with fixed precedence, the annotation model over the
// static model over the reader model, using [merge.Merge]. The result then
// passes through the filter chain in registration order, with the
// unused-component filter appended when [Config.RemoveUnusedComponents] is
// set. Finally required fields are filled in and configured servers are
// injected.
//
// # Quick Start
//
//	cfg := assembly.DefaultConfig()
//	cfg.ArchiveName = "petstore"
//	cfg.RemoveUnusedComponents = true
//
//	doc, err := assembly.Run(cfg, assembly.Inputs{
//		Reader: readerModel,
//		Static: staticModel,
//	})
//
// # Context
//
// All state of one assembly lives in a [Context]. Nothing is shared between
// contexts, so separate assemblies can run in parallel. A context is final
// after [Context.Assemble]: setting models, adding filters or assembling
// again returns an [oaserrors.StateError], as does calling
// [Context.Document] before assembly.
//
//	c, err := assembly.New(cfg, assembly.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	if err := c.LoadStatic(ctx, nil, loader.FileSource("openapi.yaml")); err != nil {
//		return err
//	}
//	user := c.Registry().Register(registry.TypeID{Package: "app", Name: "User"}, schema)
//	...
//	doc, err := c.Assemble()
//
// # Defaults
//
// When the merged document lacks them, openapi is set to 3.1.0 (or
// [Config.OpenAPIVersion], which always wins), paths to an empty object, and
// info to a title of "<ArchiveName> API" with version "1.0". Non-empty
// [Config.Info] fields replace the document's values.
package assembly
