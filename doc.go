// Package oaskit provides tools for building OpenAPI 3.0 and 3.1 documents
// out of partial models.
//
// # Overview
//
// The library consists of these packages:
//
//   - model: the dialect-agnostic document tree
//   - codec: read and write documents as JSON or YAML in either dialect
//   - merge: deep-merge two documents with primary-wins semantics
//   - registry: give schemas of named types a component and a reference
//   - filter: rewrite documents node by node, and remove unused components
//   - loader: read and merge several static files concurrently
//   - assembly: combine reader, static and annotation models into one document
//   - validator: check a document against the structure of its dialect
//
// Supported OpenAPI versions:
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.3.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
//	go get github.com/erraggy/oaskit
//
// # Quick Start
//
// Assemble a document from static files:
//
//	cfg := assembly.DefaultConfig()
//	cfg.RemoveUnusedComponents = true
//
//	c, err := assembly.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	primary := loader.FileSource("openapi.yaml")
//	if err := c.LoadStatic(ctx, &primary, loader.FileSource("openapi.json")); err != nil {
//		log.Fatal(err)
//	}
//	doc, err := c.Assemble()
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := codec.Marshal(doc, codec.FormatYAML)
//
// Convert a document to 3.0:
//
//	w, _ := codec.NewWriter(codec.FormatJSON, codec.WithDialect(codec.Dialect30))
//	out, err := w.Write(doc)
//
// # Errors
//
// Errors wrap the sentinels of package oaserrors, so callers can test the
// category with errors.Is and extract details with errors.As.
//
// # Logging
//
// Packages log through the [Logger] interface. The default is [NopLogger];
// [NewSlogAdapter] connects a *slog.Logger.
//
// # Command-Line Tool
//
// The oaskit command exposes assembly, conversion, pruning and validation:
//
//	go install github.com/erraggy/oaskit/cmd/oaskit@latest
//	oaskit assemble -static openapi.yaml -remove-unused -o api.yaml
package oaskit
