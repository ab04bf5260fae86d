package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

func parseNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &n))
	return &n
}

func TestNodeAdapter_Kinds(t *testing.T) {
	a := NewNodeAdapter(false)
	root := parseNode(t, `
s: text
quoted: "12"
i: 0x1F
f: 2.5e3
inf: .inf
b: true
n: ~
list: [1]
obj: {}
`)
	want := map[string]ValueKind{
		"s":      KindString,
		"quoted": KindString,
		"i":      KindNumber,
		"f":      KindNumber,
		"inf":    KindString,
		"b":      KindBool,
		"n":      KindNull,
		"list":   KindArray,
		"obj":    KindObject,
	}
	props := a.Properties(root)
	require.Len(t, props, len(want))
	for _, p := range props {
		assert.Equal(t, want[p.Key], a.Kind(p.Value), p.Key)
	}

	i, _ := Lookup[*yaml.Node](a, root, "i")
	assert.Equal(t, "31", a.Number(i).String())
	f, _ := Lookup[*yaml.Node](a, root, "f")
	assert.Equal(t, "2.5e3", a.Number(f).String())
}

func TestYAMLNumber(t *testing.T) {
	tests := []struct {
		lit  string
		want string
		ok   bool
	}{
		{"42", "42", true},
		{"-0.5", "-0.5", true},
		{"+7", "7", true},
		{"0x10", "16", true},
		{"0o17", "15", true},
		{"0b101", "5", true},
		{"1_000_000", "1000000", true},
		{".5", "0.5", true},
		{"1e3", "1e3", true},
		{"123456789012345678901234567890", "123456789012345678901234567890", true},
		{".inf", "", false},
		{".nan", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			got, ok := yamlNumber(tt.lit)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

const anchoredYAML = `openapi: 3.1.0
info:
  title: Anchors
  version: "1.0"
  x-shared: &shared
    owner: platform
    tier: 1
paths:
  /a:
    x-meta: *shared
    get:
      responses:
        "200": &ok
          description: OK
  /b:
    x-meta: *shared
    get:
      responses:
        "200": *ok
components:
  schemas:
    Base: &base
      type: object
      description: base
    Derived:
      <<: *base
      description: derived
      title: Derived
`

func TestReader_Anchors(t *testing.T) {
	res, err := mustReader(t).Read([]byte(anchoredYAML), FormatYAML)
	require.NoError(t, err)
	doc := res.Document

	a := doc.Paths.Get("/a")
	b := doc.Paths.Get("/b")
	assert.Equal(t, "OK", b.Get.Responses.Codes.Value("200").Description)
	assert.NotSame(t, a.Get.Responses.Codes.Value("200"), b.Get.Responses.Codes.Value("200"),
		"aliased nodes decode to independent copies")

	metaA := a.Extensions.Value("x-meta").(*model.Map[any])
	metaB := b.Extensions.Value("x-meta").(*model.Map[any])
	assert.Equal(t, []string{"owner", "tier"}, metaA.Keys())
	assert.NotSame(t, metaA, metaB)

	derived := doc.Components.Schemas.Value("Derived")
	assert.Equal(t, []string{"object"}, derived.Type(), "merge key contributes type")
	assert.Equal(t, "derived", derived.Description(), "explicit key wins over merged one")
	assert.Equal(t, "Derived", derived.Title())
}

func TestReader_IdenticalAliases(t *testing.T) {
	res, err := mustReader(t, WithIdenticalAliases(true)).Read([]byte(anchoredYAML), FormatYAML)
	require.NoError(t, err)
	doc := res.Document

	metaA := doc.Paths.Get("/a").Extensions.Value("x-meta")
	metaB := doc.Paths.Get("/b").Extensions.Value("x-meta")
	shared := doc.Info.Extensions.Value("x-shared")
	assert.Same(t, shared.(*model.Map[any]), metaA.(*model.Map[any]))
	assert.Same(t, shared.(*model.Map[any]), metaB.(*model.Map[any]))
}

func TestReader_AliasExpansionLimit(t *testing.T) {
	src := `openapi: 3.1.0
info: {title: T, version: v}
x-a: &a [x, x, x, x]
x-b: &b [*a, *a, *a, *a]
x-c: [*b, *b, *b, *b]
`
	_, err := mustReader(t, WithMaxAliasExpansion(20)).Read([]byte(src), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
	var limit *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &limit))
	assert.Equal(t, "alias_expansion", limit.ResourceType)

	_, err = mustReader(t, WithMaxAliasExpansion(0)).Read([]byte(src), FormatYAML)
	assert.NoError(t, err, "zero disables the limit")
}

func TestCheckAliases_Cycle(t *testing.T) {
	inner := &yaml.Node{Kind: yaml.SequenceNode, Anchor: "loop"}
	inner.Content = []*yaml.Node{{Kind: yaml.AliasNode, Value: "loop", Alias: inner}}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{scalarNode("!!str", "x-loop"), inner}}

	err := checkAliases(root, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "*loop")
}
