// Package schema holds the static per-type field tables the update engine
// consumes: which fields are updatable, their declared wire types, null
// handling, validation rules, and typed accessors.
package schema

import (
	"sync"

	"github.com/fieldwise/fieldwise/ir"
)

// Field describes one updatable field of a model type. The descriptor set for
// a type is fixed at registration time and never changes across calls.
type Field struct {
	Name     string
	Type     ir.Type
	Nullable bool
	// Required forbids an explicit null regardless of Nullable.
	Required bool
	// Nested marks the field's type as itself an updatable model, enabling
	// recursive delegation.
	Nested bool

	Rules []Rule

	// New returns a pointer to a zero value of the field's declared Go
	// type; decoded candidates land there. Get reads the current value.
	// Set writes a pointer of the kind New returned, or nil to clear.
	New func() any
	Get func(m any) any
	Set func(m, v any)
}

// CheckFunc is a whole-object validation: cross-field rules evaluated against
// the fully-mutated instance. It may return several failures combined with
// multierr.
type CheckFunc func(m any) error

// Spec is the updatable-field table for one model type.
type Spec struct {
	Name   string
	Fields []*Field
	Check  CheckFunc

	once  sync.Once
	index map[string]*Field
}

// Lookup returns the descriptor for name, or nil. The mapping is identical
// across repeated calls on the same spec.
func (s *Spec) Lookup(name string) *Field {
	s.once.Do(func() {
		s.index = make(map[string]*Field, len(s.Fields))
		for _, f := range s.Fields {
			s.index[f.Name] = f
		}
	})
	return s.index[name]
}
