// Package validator checks OpenAPI documents against the structure their
// dialect requires.
//
// The document is rendered in its dialect with [codec.Value] and validated
// against an embedded JSON Schema of the 3.0 or 3.1 document structure
// using santhosh-tekuri/jsonschema. The schemas cover the document
// skeleton: required fields, allowed keys, path and response key patterns,
// and the component name pattern. Schema objects themselves are not
// validated.
//
// # Quick Start
//
//	v := validator.New()
//	if err := v.Validate(doc); err != nil {
//		var verr *oaserrors.ValidationError
//		if errors.As(err, &verr) {
//			fmt.Println(verr.Path, verr.Message)
//		}
//	}
//
// [Validator.Issues] returns every violation instead of the most specific
// one. Messages are localized with golang.org/x/text/message for
// [Validator.Language].
package validator
