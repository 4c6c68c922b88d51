package fieldwise

import (
	"reflect"

	"github.com/fieldwise/fieldwise/debug"
	"github.com/fieldwise/fieldwise/gomap"
	"github.com/fieldwise/fieldwise/ir"
	"github.com/fieldwise/fieldwise/schema"

	"go.uber.org/multierr"
)

const (
	msgNull   = "value must not be null"
	msgCoerce = "error deserializing value"
)

// Apply applies doc to m under op. The instance is mutated in place and must
// be exclusively held for the duration of the call; on an Error result it may
// have been partially mutated and must not be persisted. Nested models
// recurse through the same algorithm with error paths prefixed by the outer
// field name.
func Apply(m Model, doc *ir.Node, op Op, opts ...ApplyOpt) *Result {
	cfg := &ApplyConfig{}
	for _, f := range opts {
		f(cfg)
	}
	return apply(m, doc, op, cfg)
}

// ApplyClone applies doc to a working copy of m, leaving m untouched. The
// copy is returned only on Ok, for the caller to swap in; otherwise the
// returned model is nil.
func ApplyClone(m Cloner, doc *ir.Node, op Op, opts ...ApplyOpt) (Model, *Result) {
	cp := m.CloneModel()
	res := Apply(cp, doc, op, opts...)
	if res.Type() != OkType {
		return nil, res
	}
	return cp, res
}

func apply(m Model, doc *ir.Node, op Op, cfg *ApplyConfig) *Result {
	spec := m.Spec()
	if spec == nil || len(spec.Fields) == 0 {
		return NoChanges()
	}
	if doc == nil {
		doc = &ir.Node{Type: ir.ObjectType}
	}
	entries := project(doc, spec, op)
	if len(entries) == 0 && op == Merge {
		// nothing relevant supplied; skip validation entirely
		return NoChanges()
	}
	st := &state{model: m, spec: spec, cfg: cfg, op: op}
	for _, e := range entries {
		if cfg.FailFast && len(st.errs) > 0 {
			break
		}
		st.applyField(e.name, e.node)
	}
	if len(st.errs) > 0 {
		return Failed(st.errs...)
	}
	if op == Merge && len(st.changed) == 0 {
		return NoChanges()
	}
	return st.finalize()
}

type entry struct {
	name string
	node *ir.Node
}

// project intersects the document's keys with the updatable field set, in
// document order. For Replace, absent updatable fields are injected as
// explicit nulls, in declaration order, after the supplied keys.
func project(doc *ir.Node, spec *schema.Spec, op Op) []entry {
	var res []entry
	seen := map[string]bool{}
	for i, key := range doc.Fields {
		if spec.Lookup(key) == nil {
			// extra, non-updatable data rides along silently
			continue
		}
		res = append(res, entry{key, doc.Values[i]})
		seen[key] = true
	}
	if op == Replace {
		for _, f := range spec.Fields {
			if !seen[f.Name] {
				res = append(res, entry{f.Name, ir.Null()})
			}
		}
	}
	if debug.Project() {
		debug.Logf("project %s %s: %d of %d keys\n", spec.Name, op, len(res), len(doc.Fields))
	}
	return res
}

type state struct {
	model   Model
	spec    *schema.Spec
	cfg     *ApplyConfig
	op      Op
	changed []string
	errs    []FieldError
}

func (st *state) fail(path, msg string) {
	st.errs = append(st.errs, FieldError{Path: path, Message: msg})
}

func (st *state) failErr(path string, err error) {
	for _, e := range multierr.Errors(err) {
		if fe, ok := e.(FieldError); ok {
			st.fail(joinPath(path, fe.Path), fe.Message)
			continue
		}
		st.fail(path, e.Error())
	}
}

func joinPath(outer, inner string) string {
	if inner == "" {
		return outer
	}
	if outer == "" {
		return inner
	}
	return outer + "." + inner
}

func (st *state) applyField(name string, node *ir.Node) {
	f := st.spec.Lookup(name)
	cur := f.Get(st.model)
	if debug.Apply() {
		debug.Logf("apply %s.%s <- %s\n", st.spec.Name, name, node.Type)
	}

	if node.Type == ir.NullType {
		if f.Required || !f.Nullable {
			st.fail(name, msgNull)
			return
		}
		if gomap.IsNil(cur) {
			return
		}
		f.Set(st.model, nil)
		st.changed = append(st.changed, name)
		return
	}

	if f.Nested {
		if node.Type != ir.ObjectType {
			st.fail(name, msgCoerce)
			return
		}
		if !gomap.IsNil(cur) {
			if nm, ok := cur.(Model); ok {
				st.delegate(name, nm, node)
				return
			}
		}
	}

	ptr := f.New()
	if err := gomap.Decode(node, ptr); err != nil {
		if debug.Coerce() {
			debug.Logf("coerce %s.%s: %v\n", st.spec.Name, name, err)
		}
		st.fail(name, msgCoerce)
		return
	}
	cand := gomap.Indirect(ptr)

	// all of a field's rules run, even under FailFast
	nErrs := len(st.errs)
	for _, r := range f.Rules {
		if r.Check(cand) {
			continue
		}
		if debug.Rules() {
			debug.Logf("rule %s.%s: %s\n", st.spec.Name, name, r.Message)
		}
		st.fail(name, r.Message)
	}
	if len(st.errs) > nErrs {
		return
	}

	if f.Type.IsLeaf() {
		if scalarEqual(gomap.Indirect(cur), cand) {
			return
		}
	} else if nm, ok := ptr.(Model); ok && !gomap.IsNil(ptr) {
		// a freshly decoded model value carries its own cross-field rules
		if sp := nm.Spec(); sp != nil && sp.Check != nil {
			if err := sp.Check(nm); err != nil {
				st.failErr(name, err)
				return
			}
		}
	}

	f.Set(st.model, ptr)
	st.changed = append(st.changed, name)
}

// delegate recursively applies node to the nested instance under the same
// op. A nested Ok contributes the outer field name to the changed list; the
// nested sub-paths stay abstracted.
func (st *state) delegate(name string, nm Model, node *ir.Node) {
	res := apply(nm, node, st.op, &ApplyConfig{FailFast: st.cfg.FailFast})
	switch res.Type() {
	case OkType:
		st.changed = append(st.changed, name)
	case ErrorType:
		for _, fe := range res.Errors() {
			st.fail(joinPath(name, fe.Path), fe.Message)
		}
	case NoChangesType:
	}
}

func (st *state) finalize() *Result {
	if st.spec.Check != nil {
		if err := st.spec.Check(st.model); err != nil {
			st.failErr("", err)
			return Failed(st.errs...)
		}
	}
	if st.cfg.Check != nil {
		if err := st.cfg.Check(st.model); err != nil {
			st.failErr("", err)
			return Failed(st.errs...)
		}
	}
	if u, ok := st.model.(Updated); ok {
		u.Updated(st.changed)
	}
	if st.cfg.AfterUpdate != nil {
		st.cfg.AfterUpdate(st.changed)
	}
	return Ok(st.changed)
}

// scalarEqual compares decoded scalar candidates by value. Compound and
// reference values never reach here: they are conservatively treated as
// changed.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
