package schema

import (
	"strings"
	"time"
)

// Kind is the semantic type of a field as it appears in a JSON payload.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindBoolean  Kind = "boolean"
	KindDate     Kind = "date"     // "YYYY-MM-DD" string
	KindDateTime Kind = "datetime" // RFC3339 string (stored as time.Time when server-stamped)
	KindArray    Kind = "array"
)

// Field describes one column of an entity: its semantic type, whether the
// caller must supply it, what to fill in when they don't, and the constraint
// rule applied to supplied values.
type Field struct {
	Name     string
	Type     Kind
	Required bool

	// Default is a literal filled in when the field is omitted. DefaultFn is
	// used instead for values that must be produced per request (empty lists,
	// "today"). Only one of the two is set.
	Default   interface{}
	DefaultFn func(now time.Time) interface{}

	// Enum restricts a string field to a fixed vocabulary.
	Enum []string

	// Rule is a validation tag (pkg/validator) applied to supplied values,
	// e.g. "gt=0", "gte=0,lte=5", "email". Never includes required/omitempty.
	Rule string

	// Elem is the element schema for arrays of objects (e.g. invoice items).
	// Arrays without Elem hold plain strings (tags, permissions).
	Elem *Entity

	// MinItems rejects arrays shorter than this (invoice items must be non-empty).
	MinItems int
}

// Entity is one business record type. Embedded entities (line items, journal
// lines) only appear inside other entities and have no collection of their own.
type Entity struct {
	Name       string
	Collection string
	Fields     []Field
	Embedded   bool
}

// Registry is the single source of truth for entity shapes. The validation
// engine, the derivation engine and the /schema endpoint all read from it;
// adding an entity means adding one table entry here and nothing else.
type Registry struct {
	entities map[string]*Entity
	order    []string
}

// NewRegistry builds a registry pre-loaded with every ERP entity.
func NewRegistry() *Registry {
	r := &Registry{entities: make(map[string]*Entity)}
	for i := range allEntities {
		r.register(&allEntities[i])
	}
	return r
}

func (r *Registry) register(e *Entity) {
	key := strings.ToLower(e.Name)
	if e.Collection == "" && !e.Embedded {
		e.Collection = key
	}
	r.entities[key] = e
	r.order = append(r.order, e.Name)
}

// Lookup resolves an entity by name, case-insensitive.
func (r *Registry) Lookup(name string) (*Entity, bool) {
	e, ok := r.entities[strings.ToLower(name)]
	return e, ok
}

// Names returns every registered entity name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Describe produces a machine-readable description of one entity, consumed by
// external low-code tooling through GET /schema.
func (r *Registry) Describe(name string) (map[string]interface{}, bool) {
	ent, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}

	properties := map[string]interface{}{}
	required := []string{}
	for _, f := range ent.Fields {
		prop := map[string]interface{}{
			"type": string(f.Type),
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		if f.Rule != "" {
			prop["constraints"] = f.Rule
		}
		if f.Type == KindArray {
			if f.Elem != nil {
				item, _ := r.Describe(f.Elem.Name)
				prop["items"] = item
			} else {
				prop["items"] = map[string]interface{}{"type": string(KindString)}
			}
			if f.MinItems > 0 {
				prop["min_items"] = f.MinItems
			}
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]interface{}{
		"title":      ent.Name,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}, true
}

// DescribeAll describes every registered entity, keyed by entity name.
func (r *Registry) DescribeAll() map[string]interface{} {
	out := make(map[string]interface{}, len(r.order))
	for _, name := range r.order {
		desc, _ := r.Describe(name)
		out[name] = desc
	}
	return out
}
