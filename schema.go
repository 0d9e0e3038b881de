package docbind

import (
	"fmt"
	"reflect"

	"github.com/docbind/docbind/i18n"
)

// Property binds one record field to one document path together with the leaf
// converter (or nested schema) that moves values across it. A Property is
// owned by exactly one Schema and is immutable.
type Property[D, P, R any] struct {
	name  string
	path  Path
	typ   reflect.Type // decoded Go type of the bound field
	dec   func(f Format[D, P], doc D) (any, error)
	enc   func(f Format[D, P], doc D, r R) D
	set   func(r *R, v any)
	value *AnyValue // erased leaf converter; nil for nested-schema bindings
}

// Name returns the field identity of the binding.
func (p Property[D, P, R]) Name() string { return p.name }

// Path returns the document location the binding owns.
func (p Property[D, P, R]) Path() Path { return p.path }

// Type returns the decoded Go type of the bound field.
func (p Property[D, P, R]) Type() reflect.Type { return p.typ }

// Value returns the erased leaf converter, or false for nested-schema
// bindings.
func (p Property[D, P, R]) Value() (AnyValue, bool) {
	if p.value == nil {
		return AnyValue{}, false
	}
	return *p.value, true
}

// Prop binds a primitive-valued field: the converter's decoded type must be
// the field's type, and get/set form the lens between R and the field.
func Prop[D, P, R, T any](name string, path Path, c Converter[P, T], get func(R) T, set func(*R, T)) Property[D, P, R] {
	av := tryErase(c)
	return Property[D, P, R]{
		name:  name,
		path:  path,
		typ:   reflect.TypeOf((*T)(nil)).Elem(),
		value: av,
		dec: func(f Format[D, P], doc D) (any, error) {
			v, err := DecodeAt(f, doc, path, c.Decode)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		enc: func(f Format[D, P], doc D, r R) D {
			return f.Set(doc, path, c.Encode(get(r)))
		},
		set: func(r *R, v any) { set(r, v.(T)) },
	}
}

// Embed binds a field whose type is itself a record described by another
// Schema. Decoding reuses DecodeAt: the nested schema's issues are re-keyed
// under this binding's path. Encoding writes the nested document as a
// nested-document primitive at the binding's path.
func Embed[D, P, R, T any](name string, path Path, nested *Schema[D, P, T], get func(R) T, set func(*R, T)) Property[D, P, R] {
	return Property[D, P, R]{
		name: name,
		path: path,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		dec: func(f Format[D, P], doc D) (any, error) {
			v, err := DecodeAt(f, doc, path, func(prim P) (T, error) {
				var zero T
				inner, ok := f.AsDoc(prim)
				if !ok {
					return zero, typeMismatch("document")
				}
				return nested.Decode(inner)
			})
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		enc: func(f Format[D, P], doc D, r R) D {
			return f.Set(doc, path, f.FromDoc(nested.Encode(get(r))))
		},
		set: func(r *R, v any) { set(r, v.(T)) },
	}
}

// Schema is an ordered collection of Property bindings for one record type R
// over one Format. It is immutable after construction and safe for concurrent
// use.
type Schema[D, P, R any] struct {
	format Format[D, P]
	props  []Property[D, P, R]
}

// NewSchema builds a Schema from bindings in declaration order. Duplicate
// binding names or paths are a programming error and panic immediately.
func NewSchema[D, P, R any](f Format[D, P], props ...Property[D, P, R]) *Schema[D, P, R] {
	byName := make(map[string]struct{}, len(props))
	for i, p := range props {
		if _, dup := byName[p.name]; dup {
			panic(fmt.Sprintf("docbind: %s: property %q bound twice", CodeDuplicateBinding, p.name))
		}
		byName[p.name] = struct{}{}
		for _, q := range props[:i] {
			if p.path.Equal(q.path) {
				panic(fmt.Sprintf("docbind: %s: path %s bound by both %q and %q", CodeDuplicateBinding, p.path, q.name, p.name))
			}
		}
	}
	return &Schema[D, P, R]{format: f, props: append([]Property[D, P, R](nil), props...)}
}

// Format returns the document format the schema was built over.
func (s *Schema[D, P, R]) Format() Format[D, P] { return s.format }

// Properties returns the bindings in declaration order. The slice is a copy;
// the bindings themselves are shared and immutable.
func (s *Schema[D, P, R]) Properties() []Property[D, P, R] {
	return append([]Property[D, P, R](nil), s.props...)
}

// Decode evaluates every binding independently against doc and aggregates
// every failure; it never stops at the first one. Only when all bindings
// succeed is the record assembled, in binding order. On failure the returned
// error is a non-empty Issues value keyed by full document paths.
func (s *Schema[D, P, R]) Decode(doc D) (R, error) {
	var zero R
	vals := make([]any, len(s.props))
	var iss Issues
	for i, p := range s.props {
		v, err := p.dec(s.format, doc)
		if err != nil {
			// the binding's decode already keyed its issues by full path
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
	var r R
	for i, p := range s.props {
		p.set(&r, vals[i])
	}
	return r, nil
}

// Encode builds a fresh document and writes every binding's encoded value at
// its path. Encoding is total: there is no error channel.
func (s *Schema[D, P, R]) Encode(r R) D {
	doc := s.format.Empty()
	for _, p := range s.props {
		doc = p.enc(s.format, doc, r)
	}
	return doc
}

// typeMismatch is the shared invalid_type leaf issue; the caller's DecodeAt
// rebases it under the offending path.
func typeMismatch(expected string) Issues {
	return Issues{{
		Path:    "/",
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Params:  map[string]any{"expected": expected},
	}}
}
