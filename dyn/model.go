// Package dyn builds updatable models from schema files instead of Go type
// definitions: fields, rules, and nested references are declared in YAML and
// backed by an ordered value map.
package dyn

import (
	"fmt"

	"github.com/fieldwise/fieldwise"
	"github.com/fieldwise/fieldwise/gomap"
	"github.com/fieldwise/fieldwise/ir"
	"github.com/fieldwise/fieldwise/schema"
)

type Model struct {
	spec *schema.Spec
	vals map[string]any
}

func New(spec *schema.Spec) *Model {
	return &Model{spec: spec, vals: map[string]any{}}
}

func (m *Model) Spec() *schema.Spec {
	return m.spec
}

// Value returns the current value of a field, nil when null or unset.
func (m *Model) Value(name string) any {
	return m.vals[name]
}

// Env flattens the model into plain Go values for expr-based object checks.
func (m *Model) Env() map[string]any {
	res := make(map[string]any, len(m.vals))
	for k, v := range m.vals {
		if nm, ok := v.(*Model); ok && nm != nil {
			res[k] = nm.Env()
			continue
		}
		res[k] = v
	}
	return res
}

func (m *Model) CloneModel() fieldwise.Model {
	cp := New(m.spec)
	for k, v := range m.vals {
		cp.vals[k] = cloneVal(v)
	}
	return cp
}

func cloneVal(v any) any {
	switch x := v.(type) {
	case *Model:
		if x == nil {
			return nil
		}
		return x.CloneModel()
	case map[string]any:
		cp := make(map[string]any, len(x))
		for k, item := range x {
			cp[k] = cloneVal(item)
		}
		return cp
	case []any:
		cp := make([]any, len(x))
		for i, item := range x {
			cp[i] = cloneVal(item)
		}
		return cp
	default:
		return v
	}
}

// DecodeIR populates the model from an object node, keeping only declared
// fields. It is the gomap capability hook: a nil nested field coerces into a
// fresh model through it.
func (m *Model) DecodeIR(node *ir.Node) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("expected object for %s, got %s", m.spec.Name, node.Type)
	}
	for i, key := range node.Fields {
		f := m.spec.Lookup(key)
		if f == nil {
			continue
		}
		val := node.Values[i]
		if val.Type == ir.NullType {
			f.Set(m, nil)
			continue
		}
		ptr := f.New()
		if err := gomap.Decode(val, ptr); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		f.Set(m, ptr)
	}
	return nil
}

// Node renders the model as an object node in field-declaration order.
func (m *Model) Node() (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for _, f := range m.spec.Fields {
		v, ok := m.vals[f.Name]
		if !ok {
			continue
		}
		if nm, isModel := v.(*Model); isModel && nm != nil {
			sub, err := nm.Node()
			if err != nil {
				return nil, err
			}
			res.Set(f.Name, sub)
			continue
		}
		y, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		res.Set(f.Name, y)
	}
	return res, nil
}
