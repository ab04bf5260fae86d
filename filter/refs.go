package filter

import (
	"slices"
	"strings"

	"github.com/erraggy/oaskit/model"
)

// ComponentKey names one component.
type ComponentKey struct {
	Category model.Category
	Name     string
}

// String returns the component's reference, e.g. "#/components/schemas/Pet".
func (k ComponentKey) String() string {
	return model.ComponentRef(k.Category, k.Name)
}

// RefCollector counts references to components per (category, name).
//
// Counted positions are the $ref of every referenceable node (schemas at
// any depth, parameters, headers, examples, request bodies, responses,
// links, callbacks, security schemes and path items), the scheme names of
// security requirements and the values of discriminator mappings.
//
// A reference whose category does not match the node holding it, such as a
// parameter pointing into #/components/schemas/, is not counted. A pointer
// reaching inside a component counts for the owning component. External
// references are ignored.
type RefCollector struct {
	counts map[ComponentKey]int
}

// NewRefCollector creates an empty RefCollector.
func NewRefCollector() *RefCollector {
	return &RefCollector{counts: make(map[ComponentKey]int)}
}

// Collect counts every reference in doc, including those held by
// components.
func (c *RefCollector) Collect(doc *model.OpenAPI) {
	if doc != nil {
		c.walk(doc, 1, map[model.Node]bool{})
	}
}

// CollectNode counts the references held by n and its descendants.
func (c *RefCollector) CollectNode(n model.Node) {
	c.walk(n, 1, map[model.Node]bool{})
}

// Release un-counts the references held by n and its descendants, as when
// n is removed from the document.
func (c *RefCollector) Release(n model.Node) {
	c.walk(n, -1, map[model.Node]bool{})
}

// Count returns the number of references to a component.
func (c *RefCollector) Count(category model.Category, name string) int {
	return c.counts[ComponentKey{category, name}]
}

// Referenced returns the referenced component names of a category, sorted.
func (c *RefCollector) Referenced(category model.Category) []string {
	var names []string
	for k, n := range c.counts {
		if k.Category == category && n > 0 {
			names = append(names, k.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Keys returns every referenced component, ordered by category then name.
func (c *RefCollector) Keys() []ComponentKey {
	var keys []ComponentKey
	for _, cat := range model.Categories {
		for _, name := range c.Referenced(cat) {
			keys = append(keys, ComponentKey{cat, name})
		}
	}
	return keys
}

func (c *RefCollector) add(k ComponentKey, delta int) {
	n := c.counts[k] + delta
	if n <= 0 {
		delete(c.counts, k)
		return
	}
	c.counts[k] = n
}

// walk visits n and its descendants. ancestors guards against nodes that
// contain themselves; a node shared by several parents is visited at each.
func (c *RefCollector) walk(n model.Node, delta int, ancestors map[model.Node]bool) {
	if model.IsNil(n) || ancestors[n] {
		return
	}
	ancestors[n] = true
	defer delete(ancestors, n)

	switch v := n.(type) {
	case model.Referenceable:
		if k, ok := refKey(v); ok {
			c.add(k, delta)
		}
	case *model.SecurityRequirement:
		for name := range v.Schemes.All() {
			c.add(ComponentKey{model.CategorySecuritySchemes, name}, delta)
		}
	case *model.Discriminator:
		for _, target := range v.Mapping.All() {
			if k, ok := mappingKey(target); ok {
				c.add(k, delta)
			}
		}
	}
	model.Children(n, func(child model.Node) { c.walk(child, delta, ancestors) })
}

// refKey resolves the component a referenceable node points at.
func refKey(n model.Referenceable) (ComponentKey, bool) {
	ref := n.Reference()
	if ref == "" {
		return ComponentKey{}, false
	}
	cat, name, ok := model.ParseComponentRef(ref)
	if !ok {
		return ComponentKey{}, false
	}
	want, _ := model.CategoryOf(n)
	if cat != want && !deepRef(ref, cat) {
		return ComponentKey{}, false
	}
	return ComponentKey{cat, name}, true
}

// deepRef reports whether ref points inside a component rather than at it.
func deepRef(ref string, cat model.Category) bool {
	return strings.Contains(strings.TrimPrefix(ref, cat.RefPrefix()), "/")
}

// mappingKey resolves a discriminator mapping value, which is either a
// schema reference or a bare schema name.
func mappingKey(target string) (ComponentKey, bool) {
	if target == "" {
		return ComponentKey{}, false
	}
	if !strings.ContainsAny(target, "#/") {
		return ComponentKey{model.CategorySchemas, target}, true
	}
	cat, name, ok := model.ParseComponentRef(target)
	if !ok || cat != model.CategorySchemas {
		return ComponentKey{}, false
	}
	return ComponentKey{cat, name}, true
}
