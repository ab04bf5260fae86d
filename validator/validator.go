package validator

import (
	"bytes"
	"embed"
	"fmt"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/internal/issues"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var schemaFile = map[codec.Dialect]string{
	codec.Dialect30: "schemas/oas30.json",
	codec.Dialect31: "schemas/oas31.json",
}

// compiled holds the structural schemas. They are compiled once per
// process and shared by every Validator.
var compiled = sync.OnceValues(func() (map[codec.Dialect]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	out := make(map[codec.Dialect]*jsonschema.Schema, len(schemaFile))
	for d, name := range schemaFile {
		data, err := schemaFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("validator: invalid schema %s: %w", name, err)
		}
		if err := c.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("validator: failed to add schema %s: %w", name, err)
		}
		sch, err := c.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("validator: failed to compile schema %s: %w", name, err)
		}
		out[d] = sch
	}
	return out, nil
})

// Issue is a single structural violation.
type Issue = issues.Issue

// Validator checks documents against the structure the OpenAPI
// specification requires of their dialect.
type Validator struct {
	// Language selects the language of violation messages.
	// Default: English.
	Language language.Tag
}

// New creates a new Validator instance with default settings.
func New() *Validator {
	return &Validator{Language: language.English}
}

// Validate checks doc in the dialect of its openapi field. It returns nil
// for a valid document and otherwise a *oaserrors.ValidationError for the
// most specific violation found.
func (v *Validator) Validate(doc *model.OpenAPI) error {
	if doc == nil {
		return &oaserrors.ValidationError{Message: "document is nil"}
	}
	return v.ValidateDialect(doc, codec.DialectFor(doc.OpenAPI))
}

// ValidateDialect checks doc as it would be written in dialect d.
func (v *Validator) ValidateDialect(doc *model.OpenAPI, d codec.Dialect) error {
	verr, err := v.check(doc, d)
	if err != nil || verr == nil {
		return err
	}
	leaf := mostSpecific(leaves(verr))
	return &oaserrors.ValidationError{
		Path:    pathutil.Pointer(leaf.InstanceLocation...),
		Field:   field(leaf),
		Message: leaf.ErrorKind.LocalizedString(v.printer()),
		Cause:   verr,
	}
}

// Issues checks doc in dialect d and returns every violation found, in
// document order of the failing schema branches.
func (v *Validator) Issues(doc *model.OpenAPI, d codec.Dialect) ([]Issue, error) {
	verr, err := v.check(doc, d)
	if err != nil || verr == nil {
		return nil, err
	}
	p := v.printer()
	var out []Issue
	for _, leaf := range leaves(verr) {
		out = append(out, Issue{
			Path:     pathutil.Pointer(leaf.InstanceLocation...),
			Keyword:  keyword(leaf),
			Message:  leaf.ErrorKind.LocalizedString(p),
			Severity: issues.SeverityError,
		})
	}
	return out, nil
}

func (v *Validator) printer() *message.Printer {
	tag := v.Language
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// check returns the schema violation for doc, or an error when doc could
// not be checked at all.
func (v *Validator) check(doc *model.OpenAPI, d codec.Dialect) (*jsonschema.ValidationError, error) {
	if doc == nil {
		return nil, &oaserrors.ValidationError{Message: "document is nil"}
	}
	if d == codec.DialectAuto {
		d = codec.DialectFor(doc.OpenAPI)
	}
	schemas, err := compiled()
	if err != nil {
		return nil, err
	}
	sch, ok := schemas[d]
	if !ok {
		return nil, &oaserrors.ValidationError{Field: "openapi", Value: d, Message: "unsupported dialect"}
	}

	if doc.OpenAPI != "" && codec.DialectFor(doc.OpenAPI) != d {
		c := *doc
		c.OpenAPI = d.DefaultVersion()
		doc = &c
	}
	value, _ := codec.Value(doc, d)
	err = sch.Validate(plain(value))
	if err == nil {
		return nil, nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, &oaserrors.ValidationError{Message: "validation failed", Cause: err}
	}
	return verr, nil
}

// plain converts a codec value tree into the map and slice shapes the
// schema engine expects.
func plain(v any) any {
	switch t := v.(type) {
	case *model.Map[any]:
		out := make(map[string]any, t.Len())
		for k, val := range t.All() {
			out[k] = plain(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plain(val)
		}
		return out
	default:
		return v
	}
}

// leaves returns the violations without causes, depth first.
func leaves(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}
	var out []*jsonschema.ValidationError
	for _, c := range verr.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// mostSpecific picks the violation with the deepest instance location,
// the first one on a tie.
func mostSpecific(list []*jsonschema.ValidationError) *jsonschema.ValidationError {
	return slices.MaxFunc(list, func(a, b *jsonschema.ValidationError) int {
		return len(a.InstanceLocation) - len(b.InstanceLocation)
	})
}

func keyword(verr *jsonschema.ValidationError) string {
	kp := verr.ErrorKind.KeywordPath()
	if len(kp) == 0 {
		return ""
	}
	return kp[len(kp)-1]
}

// field is the instance property the violation is about: the missing
// property, the last location token, or the keyword.
func field(verr *jsonschema.ValidationError) string {
	if req, ok := verr.ErrorKind.(*kind.Required); ok && len(req.Missing) > 0 {
		return req.Missing[0]
	}
	if n := len(verr.InstanceLocation); n > 0 {
		return verr.InstanceLocation[n-1]
	}
	return keyword(verr)
}
