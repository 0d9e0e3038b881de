package docbind

import (
	"fmt"
	"reflect"
)

// Selection names one parent binding and the setter placing its decoded value
// into the view type V. Build with Select.
type Selection[V any] struct {
	name string
	typ  reflect.Type
	set  func(v *V, val any)
}

// Select picks the parent binding called name for the projection and assigns
// the decoded value into V. T must be the binding's decoded type; the
// mismatch is checked when the projection is constructed.
func Select[V, T any](name string, set func(v *V, val T)) Selection[V] {
	return Selection[V]{
		name: name,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		set:  func(v *V, val any) { set(v, val.(T)) },
	}
}

// Projection is a read-only view over a strict subset of a Schema's bindings.
// It shares the parent's format and per-path decode machinery but exposes no
// encode: projections are read paths, not write paths.
type Projection[D, P, R, V any] struct {
	parent *Schema[D, P, R]
	props  []Property[D, P, R]
	assign []func(v *V, val any)
}

// NewProjection builds a projection of parent over the selected bindings.
// It panics when a selection names an unknown binding, selects one twice, has
// a mismatched value type, or covers every parent binding (a projection must
// be a strict subset).
func NewProjection[D, P, R, V any](parent *Schema[D, P, R], sels ...Selection[V]) *Projection[D, P, R, V] {
	if len(sels) == 0 {
		panic("docbind: projection selects no bindings")
	}
	if len(sels) >= len(parent.props) {
		panic("docbind: projection must be a strict subset of the parent schema")
	}
	byName := make(map[string]Property[D, P, R], len(parent.props))
	for _, p := range parent.props {
		byName[p.name] = p
	}
	seen := make(map[string]struct{}, len(sels))
	props := make([]Property[D, P, R], 0, len(sels))
	assign := make([]func(v *V, val any), 0, len(sels))
	for _, sel := range sels {
		if _, dup := seen[sel.name]; dup {
			panic(fmt.Sprintf("docbind: %s: projection selects %q twice", CodeDuplicateBinding, sel.name))
		}
		seen[sel.name] = struct{}{}
		p, ok := byName[sel.name]
		if !ok {
			panic(fmt.Sprintf("docbind: projection selects unknown binding %q", sel.name))
		}
		if p.typ != sel.typ {
			panic(fmt.Sprintf("docbind: projection binding %q decodes %v, selection expects %v", sel.name, p.typ, sel.typ))
		}
		props = append(props, p)
		assign = append(assign, sel.set)
	}
	return &Projection[D, P, R, V]{parent: parent, props: props, assign: assign}
}

// Decode evaluates the selected bindings against doc with the same exhaustive
// path-keyed aggregation as a full schema decode, then assembles V in
// selection order.
func (pr *Projection[D, P, R, V]) Decode(doc D) (V, error) {
	var zero V
	vals := make([]any, len(pr.props))
	var iss Issues
	for i, p := range pr.props {
		v, err := p.dec(pr.parent.format, doc)
		if err != nil {
			if child, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, child...)
			} else {
				iss = AppendIssues(iss, Issue{Path: p.path.Pointer(), Code: CodeParseError, Message: err.Error(), Cause: err})
			}
			continue
		}
		vals[i] = v
	}
	if len(iss) > 0 {
		return zero, iss
	}
	var v V
	for i := range pr.props {
		pr.assign[i](&v, vals[i])
	}
	return v, nil
}

// Fields enumerates the selected bindings in selection order.
func (pr *Projection[D, P, R, V]) Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(pr.props))
	for _, p := range pr.props {
		out = append(out, FieldInfo{Name: p.name, Path: p.path, Type: p.typ})
	}
	return out
}
