package filter

import (
	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/model"
)

// UnusedComponentsID is the identity of the unused-component filter.
const UnusedComponentsID = "oaskit.unused-components"

// UnusedComponents removes components that nothing reachable from the
// document roots refers to. Roots are everything outside Components: info,
// servers, paths, webhooks, top-level security and tags. Components of
// categories excluded by WithCategories are treated as roots too.
//
// Removal repeats until a pass removes nothing, so components only kept
// alive by a removed one go as well, and a group of components that only
// refer to each other is removed as a whole.
type UnusedComponents struct {
	categories map[model.Category]bool
	logger     oaskit.Logger
	removed    []ComponentKey
}

// UnusedOption configures UnusedComponents.
type UnusedOption func(*UnusedComponents)

// WithCategories restricts pruning to the given categories. Default: all.
func WithCategories(categories ...model.Category) UnusedOption {
	return func(u *UnusedComponents) {
		u.categories = make(map[model.Category]bool, len(categories))
		for _, c := range categories {
			u.categories[c] = true
		}
	}
}

// WithLogger sets the logger. Default: oaskit.NopLogger.
func WithLogger(logger oaskit.Logger) UnusedOption {
	return func(u *UnusedComponents) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// NewUnusedComponents creates the unused-component filter.
func NewUnusedComponents(opts ...UnusedOption) *UnusedComponents {
	u := &UnusedComponents{logger: oaskit.NopLogger{}}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// FilterID implements Identity.
func (u *UnusedComponents) FilterID() string { return UnusedComponentsID }

// Removed returns the components removed by the last FilterOpenAPI call,
// in removal order: pass by pass, then category order, then component
// order within the category.
func (u *UnusedComponents) Removed() []ComponentKey {
	return u.removed
}

// FilterOpenAPI implements DocumentFilter.
func (u *UnusedComponents) FilterOpenAPI(doc *model.OpenAPI) {
	u.removed = nil
	if doc == nil || doc.Components == nil {
		return
	}
	for pass := 1; ; pass++ {
		live := u.mark(doc)
		removed := u.sweep(doc.Components, live)
		u.logger.Debug("filter: unused component pass", "pass", pass, "removed", len(removed))
		if len(removed) == 0 {
			break
		}
		u.removed = append(u.removed, removed...)
	}
	if componentsEmpty(doc.Components) {
		doc.Components = nil
	}
}

func (u *UnusedComponents) prunes(c model.Category) bool {
	return u.categories == nil || u.categories[c]
}

// mark returns the referenced set of everything reachable from the roots,
// following references through components breadth first. Each component
// is expanded once, which bounds the traversal on reference cycles.
func (u *UnusedComponents) mark(doc *model.OpenAPI) map[ComponentKey]bool {
	refs := NewRefCollector()
	root := *doc
	root.Components = nil
	refs.Collect(&root)
	index := componentIndex(doc.Components)

	expanded := make(map[ComponentKey]bool)
	var queue []ComponentKey
	enqueue := func(k ComponentKey) {
		if !expanded[k] {
			expanded[k] = true
			queue = append(queue, k)
		}
	}
	for _, cat := range model.Categories {
		if u.prunes(cat) {
			continue
		}
		for _, e := range componentEntries(doc.Components, cat) {
			enqueue(ComponentKey{cat, e.Key})
		}
	}
	for _, k := range refs.Keys() {
		enqueue(k)
	}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		n, ok := index[k]
		if !ok {
			continue
		}
		held := NewRefCollector()
		held.CollectNode(n)
		for _, ref := range held.Keys() {
			enqueue(ref)
		}
	}
	return expanded
}

// sweep removes every prunable component not in live.
func (u *UnusedComponents) sweep(components *model.Components, live map[ComponentKey]bool) []ComponentKey {
	var removed []ComponentKey
	for _, cat := range model.Categories {
		if !u.prunes(cat) {
			continue
		}
		p := categoryProperty(cat)
		entries := p.Entries(p.Get(components))
		kept := entries[:0:0]
		for _, e := range entries {
			k := ComponentKey{cat, e.Key}
			if live[k] {
				kept = append(kept, e)
				continue
			}
			removed = append(removed, k)
			u.logger.Debug("filter: removed unused component", "ref", k.String())
		}
		if len(kept) != len(entries) {
			p.Set(components, p.MakeMap(kept))
		}
	}
	return removed
}

var componentsDescriptor = (&model.Components{}).Descriptor()

func categoryProperty(c model.Category) *model.Property {
	return componentsDescriptor.Property(c.String())
}

func componentEntries(components *model.Components, c model.Category) []model.Entry {
	p := categoryProperty(c)
	return p.Entries(p.Get(components))
}

// componentIndex maps every non-nil component to its node.
func componentIndex(components *model.Components) map[ComponentKey]model.Node {
	index := make(map[ComponentKey]model.Node)
	for _, cat := range model.Categories {
		for _, e := range componentEntries(components, cat) {
			if n, ok := e.Value.(model.Node); ok && !model.IsNil(n) {
				index[ComponentKey{cat, e.Key}] = n
			}
		}
	}
	return index
}

func componentsEmpty(c *model.Components) bool {
	for _, cat := range model.Categories {
		if len(componentEntries(c, cat)) > 0 {
			return false
		}
	}
	return c.Extensions.Len() == 0
}
