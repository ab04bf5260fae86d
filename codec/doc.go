// Package codec reads and writes OpenAPI 3.0 and 3.1 documents as JSON or
// YAML text.
//
// Documents decode into the dialect-agnostic [model.OpenAPI] and encode back
// into either dialect. Reading and writing share one engine that works over
// an abstract JSON value through [Adapter]: [NodeAdapter] walks go.yaml.in
// YAML nodes and [ValueAdapter] walks plain values decoded from JSON.
//
// # Quick Start
//
//	r, err := codec.NewReader(codec.WithMaxSize(1 << 20))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := r.ReadFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	w, _ := codec.NewWriter(codec.FormatJSON, codec.WithDialect(codec.Dialect30))
//	out, err := w.Write(res.Document)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, warn := range out.Warnings {
//		fmt.Println(warn)
//	}
//
// # Dialects
//
// Schemas are kept in 3.1 form internally: type is always a list, and
// exclusive bounds are numbers. Reading 3.0 folds nullable into the type
// list and turns boolean exclusive bounds into numeric ones. Writing 3.0
// reverses this, converts const to enum and examples to example, and drops
// keywords 3.0 has no form for. Every lossy step is reported as a warning on
// the [Output]. A same-dialect round trip is lossless.
//
// # YAML
//
// Anchors and aliases are expanded on read. By default each alias decodes to
// an equal copy; [WithIdenticalAliases] shares one decoded value between all
// aliases of an anchor. [WithMaxAliasExpansion] bounds the size of the
// expanded document and alias cycles fail to parse. Keys too long for a
// simple YAML key are written with the explicit "? " form.
//
// # Limits
//
// Inputs larger than [WithMaxSize] (default 3 MiB) fail with an
// [oaserrors.ParseError] wrapping an [oaserrors.ResourceLimitError].
package codec
