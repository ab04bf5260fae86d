package registry

import (
	"strconv"
	"sync"

	"github.com/erraggy/oaskit/internal/naming"
	"github.com/erraggy/oaskit/internal/schemautil"
	"github.com/erraggy/oaskit/model"
)

// fallbackName is used when a type's name sanitizes to nothing.
const fallbackName = "Schema"

// Registry assigns component names to type identities and stores their
// schemas in a Components object. Every method is safe for concurrent use;
// each one runs as a single critical section.
type Registry struct {
	mu         sync.Mutex
	cfg        *config
	components *model.Components
	names      map[string]string // TypeID.String() -> component name
	hasher     *schemautil.SchemaHasher
}

// New creates a Registry that stores schemas in components. Names already
// present in components are never reused for a different type. A nil
// components gets a fresh one, available from Components.
func New(components *model.Components, opts ...Option) (*Registry, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if components == nil {
		components = &model.Components{}
	}
	return &Registry{
		cfg:        cfg,
		components: components,
		names:      make(map[string]string),
		hasher:     schemautil.NewSchemaHasher(),
	}, nil
}

// Components returns the components the registry writes to.
func (r *Registry) Components() *model.Components {
	return r.components
}

// Register records schema as the definition of id and returns a reference
// schema to it. A second registration of the same id returns a reference to
// the first one and leaves the stored schema untouched.
//
// The schema itself is returned unregistered when references are disabled,
// id is anonymous or zero, or schema is nil.
func (r *Registry) Register(id TypeID, schema *model.Schema) *model.Schema {
	if !r.eligible(id) || schema == nil {
		return schema
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if name, ok := r.names[key]; ok {
		return refTo(name)
	}

	name, reused := r.assignName(id, schema)
	r.names[key] = name
	if reused {
		r.cfg.logger.Debug("registry: reusing equivalent schema", "type", key, "name", name)
		return refTo(name)
	}
	if r.components.Schemas == nil {
		r.components.Schemas = model.NewMap[*model.Schema]()
	}
	r.components.Schemas.Set(name, schema)
	r.cfg.logger.Debug("registry: registered schema", "type", key, "name", name)
	return refTo(name)
}

// LookupRef returns a reference schema for a registered id.
func (r *Registry) LookupRef(id TypeID) (*model.Schema, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.names[id.String()]
	if !ok {
		return nil, false
	}
	return refTo(name), true
}

// Has reports whether id is registered.
func (r *Registry) Has(id TypeID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.names[id.String()]
	return ok
}

// Name returns the component name assigned to id.
func (r *Registry) Name(id TypeID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.names[id.String()]
	return name, ok
}

// Len returns the number of registered type identities.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

// Reset forgets every registered type identity, as at the start of a new
// scan. Schemas already stored keep their names, so later registrations
// still avoid them.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.names)
}

func (r *Registry) eligible(id TypeID) bool {
	return r.cfg.references && !id.Anonymous && !id.IsZero()
}

// assignName picks the first free name among base, base1, base2, ...
// With deduplication, a taken candidate holding an equivalent schema is
// reused instead; reused reports that case.
func (r *Registry) assignName(id TypeID, schema *model.Schema) (name string, reused bool) {
	base := naming.SanitizeComponentName(r.cfg.namer(id))
	if base == "" {
		base = fallbackName
	}
	var sum uint64
	if r.cfg.deduplicate {
		sum = r.hasher.Hash(schema)
	}
	for i := 0; ; i++ {
		candidate := base
		if i > 0 {
			candidate = base + strconv.Itoa(i)
		}
		existing, taken := r.components.Schemas.Get(candidate)
		if !taken {
			return candidate, false
		}
		if r.cfg.deduplicate && r.hasher.Hash(existing) == sum && schemautil.Equivalent(existing, schema) {
			return candidate, true
		}
	}
}

func refTo(name string) *model.Schema {
	return model.RefSchema(model.ComponentRef(model.CategorySchemas, name))
}
