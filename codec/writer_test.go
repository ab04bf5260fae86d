package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// generic decodes text into plain Go values so that two documents can be
// compared without regard to key order or formatting.
func generic(t *testing.T, data []byte, format Format) any {
	t.Helper()
	var v any
	if format == FormatJSON {
		require.NoError(t, json.Unmarshal(data, &v))
	} else {
		require.NoError(t, yaml.Unmarshal(data, &v))
	}
	return v
}

func mustWriter(t *testing.T, format Format, opts ...Option) *Writer {
	t.Helper()
	w, err := NewWriter(format, opts...)
	require.NoError(t, err)
	return w
}

func warningPaths(ws []Warning) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Path
	}
	return out
}

func TestWriter_RoundTrip(t *testing.T) {
	tests := []struct {
		fixture string
		format  Format
	}{
		{"petstore-3.1.yaml", FormatYAML},
		{"petstore-3.0.json", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			src := readFixture(t, tt.fixture)
			res, err := mustReader(t).Read(src, tt.format)
			require.NoError(t, err)

			out, err := mustWriter(t, tt.format).Write(res.Document)
			require.NoError(t, err)
			assert.Empty(t, out.Warnings)
			assert.Equal(t, res.Version, out.Version)
			assert.Equal(t, res.Dialect, out.Dialect)

			if diff := cmp.Diff(generic(t, src, tt.format), generic(t, out.Data, tt.format)); diff != "" {
				t.Errorf("round trip mismatch (-source +written):\n%s", diff)
			}

			again, err := mustReader(t).Read(out.Data, tt.format)
			require.NoError(t, err)
			assert.True(t, model.Equal(res.Document, again.Document))
		})
	}
}

func TestWriter_CrossFormat(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "petstore-3.1.yaml"), FormatYAML)
	require.NoError(t, err)

	jsonOut, err := mustWriter(t, FormatJSON).Write(res.Document)
	require.NoError(t, err)
	yamlOut, err := mustWriter(t, FormatYAML).Write(res.Document)
	require.NoError(t, err)

	// YAML decodes integers as int and JSON as float64; compare through JSON.
	converted, err := json.Marshal(generic(t, yamlOut.Data, FormatYAML))
	require.NoError(t, err)
	if diff := cmp.Diff(generic(t, jsonOut.Data, FormatJSON), generic(t, converted, FormatJSON)); diff != "" {
		t.Errorf("formats disagree (-json +yaml):\n%s", diff)
	}
}

func TestWriter_Downgrade(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "downgrade-3.1.yaml"), FormatYAML)
	require.NoError(t, err)
	before, err := Marshal(res.Document, FormatYAML)
	require.NoError(t, err)

	out, err := mustWriter(t, FormatJSON, WithDialect(Dialect30)).Write(res.Document)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", out.Version)
	assert.Equal(t, Dialect30, out.Dialect)

	want := generic(t, readFixture(t, "downgrade-3.0.json"), FormatJSON)
	if diff := cmp.Diff(want, generic(t, out.Data, FormatJSON)); diff != "" {
		t.Errorf("3.0 output mismatch (-want +got):\n%s", diff)
	}

	paths := warningPaths(out.Warnings)
	for _, p := range []string{
		"/info/summary",
		"/info/license/identifier",
		"/jsonSchemaDialect",
		"/webhooks",
		"/paths/~1things/get/responses/200/description",
		"/components/schemas/Multi/type",
		"/components/schemas/OnlyNull/type",
		"/components/schemas/Examples/examples",
		"/components/schemas/Bounds/exclusiveMinimum",
		"/components/schemas/Bounds/exclusiveMaximum",
		"/components/schemas/Modern/$comment",
		"/components/schemas/Modern/patternProperties",
		"/components/schemas/Modern/unevaluatedProperties",
	} {
		assert.Contains(t, paths, p)
	}

	after, err := Marshal(res.Document, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "writing must not modify the document")
}

func TestWriter_Strict(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "downgrade-3.1.yaml"), FormatYAML)
	require.NoError(t, err)

	out, err := mustWriter(t, FormatYAML, WithDialect(Dialect30), WithStrict(true)).Write(res.Document)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
	var cerr *oaserrors.ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, res.Document.OpenAPI, cerr.SourceVersion)
	assert.Equal(t, "3.0.3", cerr.TargetVersion)
	assert.NotEmpty(t, cerr.Path)
	require.NotNil(t, out, "output is still returned")
	assert.NotEmpty(t, out.Warnings)

	clean, err := mustReader(t).Read([]byte(minimalYAML), FormatYAML)
	require.NoError(t, err)
	_, err = mustWriter(t, FormatJSON, WithStrict(true)).Write(clean.Document)
	assert.NoError(t, err, "same-dialect writes are lossless")

	var buf bytes.Buffer
	_, err = mustWriter(t, FormatYAML, WithDialect(Dialect30), WithStrict(true)).WriteTo(&buf, res.Document)
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestWriter_Upgrade(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "upgrade-3.0.yaml"), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, warningPaths(res.Warnings), "/components/schemas/Ref/description")

	out, err := mustWriter(t, FormatJSON, WithDialect(Dialect31)).Write(res.Document)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", out.Version)

	want := generic(t, readFixture(t, "upgrade-3.1.json"), FormatJSON)
	if diff := cmp.Diff(want, generic(t, out.Data, FormatJSON)); diff != "" {
		t.Errorf("3.1 output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_Target(t *testing.T) {
	doc := &model.OpenAPI{OpenAPI: "3.0.1", Info: &model.Info{Title: "T", Version: "1"}}

	tests := []struct {
		name        string
		opts        []Option
		wantVersion string
		wantDialect Dialect
	}{
		{"document version", nil, "3.0.1", Dialect30},
		{"same dialect keeps version", []Option{WithDialect(Dialect30)}, "3.0.1", Dialect30},
		{"other dialect default", []Option{WithDialect(Dialect31)}, "3.1.0", Dialect31},
		{"explicit version", []Option{WithVersion("3.1.1")}, "3.1.1", Dialect31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := mustWriter(t, FormatJSON, tt.opts...).Write(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, out.Version)
			assert.Equal(t, tt.wantDialect, out.Dialect)
			assert.Contains(t, string(out.Data), `"openapi": "`+tt.wantVersion+`"`)
		})
	}
	assert.Equal(t, "3.0.1", doc.OpenAPI)

	out, err := mustWriter(t, FormatJSON).Write(&model.OpenAPI{})
	require.NoError(t, err)
	assert.Equal(t, Version31, out.Version)
	assert.NotContains(t, string(out.Data), `"paths"`, "3.1 does not require paths")
}

func TestWriter_RequiredPaths(t *testing.T) {
	tests := []struct {
		name    string
		doc     *model.OpenAPI
		dialect Dialect
		want    bool
	}{
		{"absent in 3.0", &model.OpenAPI{}, Dialect30, true},
		{"absent in 3.1", &model.OpenAPI{}, Dialect31, false},
		{"empty in 3.0", &model.OpenAPI{Paths: &model.Paths{}}, Dialect30, true},
		{"empty in 3.1", &model.OpenAPI{Paths: &model.Paths{}}, Dialect31, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := mustWriter(t, FormatJSON, WithDialect(tt.dialect)).Write(tt.doc)
			require.NoError(t, err)
			if tt.want {
				assert.Contains(t, string(out.Data), `"paths": {}`)
			} else {
				assert.NotContains(t, string(out.Data), `"paths"`)
			}
		})
	}
}

func TestWriter_KeyOrder(t *testing.T) {
	pet := model.TypedSchema("object")
	pet.SetProperty("zeta", model.TypedSchema("string"))
	pet.SetProperty("alpha", model.TypedSchema("integer"))
	pet.SetProperty("mid", model.TypedSchema("boolean"))
	doc := &model.OpenAPI{
		OpenAPI:    "3.1.0",
		Info:       &model.Info{Title: "Order", Version: "1"},
		Components: &model.Components{Schemas: model.MapOf(model.P("Pet", pet))},
		Extensions: model.MapOf(model.P[any]("x-z", "1"), model.P[any]("x-a", "2")),
	}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Marshal(doc, format)
			require.NoError(t, err)
			s := string(data)
			assert.Less(t, strings.Index(s, "zeta"), strings.Index(s, "alpha"))
			assert.Less(t, strings.Index(s, "alpha"), strings.Index(s, "mid"))
			assert.Less(t, strings.Index(s, "x-z"), strings.Index(s, "x-a"))
			assert.Less(t, strings.Index(s, "openapi"), strings.Index(s, "info"))
		})
	}
}

func TestWriter_LongExtensionKey(t *testing.T) {
	key := "x-" + strings.Repeat("k", 1100)
	doc := &model.OpenAPI{
		OpenAPI:    "3.1.0",
		Info:       &model.Info{Title: "Long", Version: "1"},
		Extensions: model.MapOf(model.P[any](key, "value")),
	}

	data, err := Marshal(doc, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "? "+key)

	back, err := Unmarshal(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "value", back.Extensions.Value(key))
}

func TestWriter_Scalars(t *testing.T) {
	doc := &model.OpenAPI{
		OpenAPI: "3.1.0",
		Info: &model.Info{
			Title:       "yes",
			Version:     "1.10",
			Description: "line one\nline two\n",
		},
		Paths: &model.Paths{},
		Extensions: model.MapOf(
			model.P[any]("x-int", json.Number("12")),
			model.P[any]("x-float", json.Number("1.5")),
			model.P[any]("x-null", nil),
			model.P[any]("x-html", "<b>&</b>"),
		),
	}

	data, err := Marshal(doc, FormatYAML)
	require.NoError(t, err)
	back, err := Unmarshal(data, FormatYAML)
	require.NoError(t, err)
	assert.True(t, model.Equal(doc, back), string(data))

	data, err = Marshal(doc, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"x-html": "<b>&</b>"`)
	assert.Contains(t, string(data), `"x-int": 12`)
	assert.Contains(t, string(data), `"x-null": null`)
	back, err = Unmarshal(data, FormatJSON)
	require.NoError(t, err)
	assert.True(t, model.Equal(doc, back))
}

func TestWriter_Indent(t *testing.T) {
	doc := &model.OpenAPI{OpenAPI: "3.1.0", Info: &model.Info{Title: "T", Version: "1"}}

	out, err := mustWriter(t, FormatJSON, WithIndent(0)).Write(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out.Data), "\n")

	out, err = mustWriter(t, FormatJSON, WithIndent(4)).Write(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out.Data), "\n    \"info\"")

	var buf bytes.Buffer
	_, err = mustWriter(t, FormatYAML, WithIndent(4)).WriteTo(&buf, doc)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\n    title: T")
}

func TestNewWriter_Errors(t *testing.T) {
	_, err := NewWriter(FormatUnknown)
	assert.Error(t, err)
	_, err = NewWriter(FormatJSON, WithVersion("2.0"))
	assert.Error(t, err)
	_, err = NewWriter(FormatJSON, WithIndent(-1))
	assert.Error(t, err)

	w := mustWriter(t, FormatJSON)
	_, err = w.Write(nil)
	assert.Error(t, err)
}

func TestValue(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "petstore-3.1.yaml"), FormatYAML)
	require.NoError(t, err)

	v, warnings := Value(res.Document, DialectAuto)
	assert.Empty(t, warnings)
	root, ok := v.(*model.Map[any])
	require.True(t, ok)
	assert.Equal(t, "3.1.0", root.Value("openapi"))

	_, warnings = Value(res.Document, Dialect30)
	assert.NotEmpty(t, warnings)
}

// TestWriter_LibOpenAPIInterop checks that an independent implementation
// accepts what the writer emits in both dialects.
func TestWriter_LibOpenAPIInterop(t *testing.T) {
	res, err := mustReader(t).Read(readFixture(t, "petstore-3.1.yaml"), FormatYAML)
	require.NoError(t, err)

	for _, d := range []Dialect{Dialect31, Dialect30} {
		t.Run(d.String(), func(t *testing.T) {
			out, err := mustWriter(t, FormatYAML, WithDialect(d)).Write(res.Document)
			require.NoError(t, err)

			doc, err := libopenapi.NewDocument(out.Data)
			require.NoError(t, err)
			v3, errs := doc.BuildV3Model()
			require.Empty(t, errs)

			assert.Equal(t, out.Version, v3.Model.Version)
			assert.Equal(t, "Petstore", v3.Model.Info.Title)

			var paths []string
			for pair := range orderedmap.Iterate(context.Background(), v3.Model.Paths.PathItems) {
				paths = append(paths, pair.Key())
			}
			assert.Equal(t, []string{"/pets", "/pets/{id}"}, paths)
			assert.Equal(t, 3, v3.Model.Components.Schemas.Len())
		})
	}
}
