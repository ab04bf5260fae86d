package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/oaserrors"
)

// NodeAdapter implements Adapter over *yaml.Node trees. Document nodes are
// unwrapped and alias nodes are followed, so an aliased value reads exactly
// like its anchor. Merge keys ("<<") are expanded, with explicit keys
// taking precedence over merged ones.
type NodeAdapter struct {
	// IdenticalAliases makes ToRaw return the same decoded value for every
	// occurrence of one anchor. Callers mutating such a value see the change
	// everywhere the anchor was used.
	IdenticalAliases bool

	cache map[*yaml.Node]any
}

var _ Adapter[*yaml.Node] = (*NodeAdapter)(nil)

// NewNodeAdapter returns a NodeAdapter.
func NewNodeAdapter(identicalAliases bool) *NodeAdapter {
	return &NodeAdapter{IdenticalAliases: identicalAliases}
}

// resolve unwraps document and alias nodes. It returns nil for an empty
// document.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Kind implements Adapter.
func (*NodeAdapter) Kind(n *yaml.Node) ValueKind {
	r := resolve(n)
	if r == nil {
		return KindNull
	}
	switch r.Kind {
	case yaml.MappingNode:
		return KindObject
	case yaml.SequenceNode:
		return KindArray
	case yaml.ScalarNode:
		switch r.ShortTag() {
		case "!!null":
			return KindNull
		case "!!bool":
			return KindBool
		case "!!int", "!!float":
			if _, ok := yamlNumber(r.Value); ok {
				return KindNumber
			}
		}
		return KindString
	}
	return KindNull
}

// String implements Adapter.
func (*NodeAdapter) String(n *yaml.Node) string {
	if r := resolve(n); r != nil {
		return r.Value
	}
	return ""
}

// Bool implements Adapter.
func (*NodeAdapter) Bool(n *yaml.Node) bool {
	r := resolve(n)
	if r == nil {
		return false
	}
	switch strings.ToLower(r.Value) {
	case "true", "yes", "on", "y":
		return true
	}
	return false
}

// Number implements Adapter.
func (*NodeAdapter) Number(n *yaml.Node) json.Number {
	r := resolve(n)
	if r == nil {
		return "0"
	}
	num, _ := yamlNumber(r.Value)
	return num
}

// Properties implements Adapter.
func (a *NodeAdapter) Properties(n *yaml.Node) []Pair[*yaml.Node] {
	r := resolve(n)
	if r == nil || r.Kind != yaml.MappingNode {
		return nil
	}
	explicit := make(map[string]bool, len(r.Content)/2)
	for i := 0; i+1 < len(r.Content); i += 2 {
		if !isMergeKey(r.Content[i]) {
			explicit[a.String(r.Content[i])] = true
		}
	}
	out := make([]Pair[*yaml.Node], 0, len(r.Content)/2)
	emitted := make(map[string]bool, len(explicit))
	for i := 0; i+1 < len(r.Content); i += 2 {
		key, val := r.Content[i], r.Content[i+1]
		if !isMergeKey(key) {
			k := a.String(key)
			emitted[k] = true
			out = append(out, Pair[*yaml.Node]{Key: k, Value: val})
			continue
		}
		for _, p := range a.merged(val) {
			if !explicit[p.Key] && !emitted[p.Key] {
				emitted[p.Key] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// merged returns the members contributed by a merge key value: one mapping
// or a sequence of mappings, earlier mappings winning.
func (a *NodeAdapter) merged(v *yaml.Node) []Pair[*yaml.Node] {
	r := resolve(v)
	if r == nil {
		return nil
	}
	switch r.Kind {
	case yaml.MappingNode:
		return a.Properties(r)
	case yaml.SequenceNode:
		var out []Pair[*yaml.Node]
		seen := map[string]bool{}
		for _, item := range r.Content {
			for _, p := range a.merged(item) {
				if !seen[p.Key] {
					seen[p.Key] = true
					out = append(out, p)
				}
			}
		}
		return out
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	r := resolve(k)
	return r != nil && r.Kind == yaml.ScalarNode && r.Value == "<<" && r.ShortTag() == "!!merge"
}

// Elements implements Adapter.
func (*NodeAdapter) Elements(n *yaml.Node) []*yaml.Node {
	r := resolve(n)
	if r == nil || r.Kind != yaml.SequenceNode {
		return nil
	}
	return r.Content
}

// Object implements Adapter.
func (*NodeAdapter) Object(pairs []Pair[*yaml.Node]) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*len(pairs))}
	for _, p := range pairs {
		n.Content = append(n.Content, scalarNode("!!str", p.Key), p.Value)
	}
	return n
}

// Array implements Adapter.
func (*NodeAdapter) Array(items []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

// FromString implements Adapter.
func (*NodeAdapter) FromString(s string) *yaml.Node {
	return scalarNode("!!str", s)
}

// FromBool implements Adapter.
func (*NodeAdapter) FromBool(b bool) *yaml.Node {
	if b {
		return scalarNode("!!bool", "true")
	}
	return scalarNode("!!bool", "false")
}

// FromNumber implements Adapter.
func (*NodeAdapter) FromNumber(n json.Number) *yaml.Node {
	if strings.ContainsAny(n.String(), ".eE") {
		return scalarNode("!!float", n.String())
	}
	return scalarNode("!!int", n.String())
}

// Null implements Adapter.
func (*NodeAdapter) Null() *yaml.Node {
	return scalarNode("!!null", "null")
}

func (a *NodeAdapter) cachedRaw(n *yaml.Node) (any, bool) {
	t := a.anchored(n)
	if t == nil {
		return nil, false
	}
	raw, ok := a.cache[t]
	return raw, ok
}

func (a *NodeAdapter) storeRaw(n *yaml.Node, raw any) {
	t := a.anchored(n)
	if t == nil {
		return
	}
	if a.cache == nil {
		a.cache = make(map[*yaml.Node]any)
	}
	a.cache[t] = raw
}

// anchored returns the anchor node behind n when alias sharing is on.
func (a *NodeAdapter) anchored(n *yaml.Node) *yaml.Node {
	if !a.IdenticalAliases {
		return nil
	}
	t := resolve(n)
	if t == nil || t.Anchor == "" {
		return nil
	}
	return t
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// checkAliases bounds alias expansion: it rejects an alias that refers to
// one of its own ancestors and fails once the fully expanded tree would
// exceed limit nodes. Sizes are memoized per node, so the check is linear
// in the size of the unexpanded tree.
func checkAliases(root *yaml.Node, limit int64) error {
	c := aliasCheck{
		sizes:  make(map[*yaml.Node]int64),
		active: make(map[*yaml.Node]bool),
		limit:  limit,
	}
	_, err := c.size(root)
	return err
}

type aliasCheck struct {
	sizes  map[*yaml.Node]int64
	active map[*yaml.Node]bool
	limit  int64
}

func (c *aliasCheck) size(n *yaml.Node) (int64, error) {
	if n == nil {
		return 0, nil
	}
	if n.Kind == yaml.AliasNode {
		if c.active[n.Alias] {
			return 0, fmt.Errorf("alias *%s refers to its own ancestor", n.Value)
		}
		return c.size(n.Alias)
	}
	if s, ok := c.sizes[n]; ok {
		return s, nil
	}
	c.active[n] = true
	defer delete(c.active, n)
	total := int64(1)
	for _, child := range n.Content {
		s, err := c.size(child)
		if err != nil {
			return 0, err
		}
		total += s
		if c.limit > 0 && total > c.limit {
			return 0, &oaserrors.ResourceLimitError{
				ResourceType: "alias_expansion",
				Limit:        c.limit,
				Message:      "expanded YAML aliases exceed the node limit",
			}
		}
	}
	c.sizes[n] = total
	return total, nil
}
