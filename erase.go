package docbind

import (
	"fmt"
	"reflect"
	"time"
)

// Kind names one member of the closed set of decoded value shapes the type
// erasure layer supports. The set is fixed: erasing a converter whose decoded
// type falls outside it is a programming error, not a runtime failure.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindTime
	KindAbsent
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindAbsent:
		return "absent"
	}
	return "<unknown kind>"
}

// kindOf maps a decoded Go type onto the closed Kind set.
func kindOf(t reflect.Type) (Kind, bool) {
	switch t {
	case reflect.TypeOf(""):
		return KindString, true
	case reflect.TypeOf(int64(0)):
		return KindInt, true
	case reflect.TypeOf(float64(0)):
		return KindFloat, true
	case reflect.TypeOf(time.Time{}):
		return KindTime, true
	case reflect.TypeOf(struct{}{}):
		return KindAbsent, true
	}
	return 0, false
}

// AnyValue is a type-erased view of a Converter: the encoded and decoded
// types are recorded as runtime tokens and encode/decode cross an any-typed
// boundary. AnyValues are short-lived introspection handles; they hold no
// mutable state.
type AnyValue struct {
	kind    Kind
	encType reflect.Type
	decType reflect.Type
	decode  func(any) (any, error)
	encode  func(any) (any, bool)
}

// Erase wraps a concrete Converter for uniform storage. It panics when the
// decoded type is outside the supported Kind set; catch this at
// construction/test time, it is never a recoverable path.
func Erase[E, T any](c Converter[E, T]) AnyValue {
	av := tryErase(c)
	if av == nil {
		panic(fmt.Sprintf("docbind: %s: cannot erase converter decoding to %v",
			CodeUnknownKind, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return *av
}

// tryErase is the non-fatal form used by Prop: bindings whose decoded type is
// outside the Kind set simply expose no erased converter.
func tryErase[E, T any](c Converter[E, T]) *AnyValue {
	dt := reflect.TypeOf((*T)(nil)).Elem()
	k, ok := kindOf(dt)
	if !ok {
		return nil
	}
	return &AnyValue{
		kind:    k,
		encType: reflect.TypeOf((*E)(nil)).Elem(),
		decType: dt,
		decode: func(v any) (any, error) {
			e, ok := v.(E)
			if !ok {
				return nil, typeMismatch(reflect.TypeOf((*E)(nil)).Elem().String())
			}
			return c.Decode(e)
		},
		encode: func(v any) (any, bool) {
			t, ok := v.(T)
			if !ok {
				return nil, false
			}
			return c.Encode(t), true
		},
	}
}

// Kind reports the decoded value's shape.
func (av AnyValue) Kind() Kind { return av.kind }

// EncodedType returns the runtime token of the wire-side type.
func (av AnyValue) EncodedType() reflect.Type { return av.encType }

// DecodedType returns the runtime token of the native-side type.
func (av AnyValue) DecodedType() reflect.Type { return av.decType }

// Decode runs the wrapped converter across the any boundary. The input must
// hold the encoded type; anything else yields an invalid_type issue.
func (av AnyValue) Decode(v any) (any, error) { return av.decode(v) }

// Encode runs the wrapped encoder, reporting false when v does not hold the
// decoded type.
func (av AnyValue) Encode(v any) (any, bool) { return av.encode(v) }

// FieldInfo describes one binding of an erased schema.
type FieldInfo struct {
	Name string
	Path Path
	Type reflect.Type
}

// AnySchema is a type-erased view of a Schema, used to enumerate a record's
// bindings and run whole-record decode/encode without knowing the record type
// statically.
type AnySchema struct {
	record reflect.Type
	fields []FieldInfo
	decode func(any) (any, error)
	encode func(any) (any, bool)
}

// EraseSchema wraps a concrete Schema for reflective use.
func EraseSchema[D, P, R any](s *Schema[D, P, R]) AnySchema {
	fields := make([]FieldInfo, 0, len(s.props))
	for _, p := range s.props {
		fields = append(fields, FieldInfo{Name: p.name, Path: p.path, Type: p.typ})
	}
	return AnySchema{
		record: reflect.TypeOf((*R)(nil)).Elem(),
		fields: fields,
		decode: func(v any) (any, error) {
			doc, ok := v.(D)
			if !ok {
				return nil, typeMismatch("document")
			}
			return s.Decode(doc)
		},
		encode: func(v any) (any, bool) {
			r, ok := v.(R)
			if !ok {
				return nil, false
			}
			return s.Encode(r), true
		},
	}
}

// RecordType returns the runtime token of the record type.
func (as AnySchema) RecordType() reflect.Type { return as.record }

// Fields enumerates the bindings in declaration order.
func (as AnySchema) Fields() []FieldInfo {
	return append([]FieldInfo(nil), as.fields...)
}

// Decode runs whole-record decode across the any boundary.
func (as AnySchema) Decode(doc any) (any, error) { return as.decode(doc) }

// Encode runs whole-record encode, reporting false when v does not hold the
// record type.
func (as AnySchema) Encode(v any) (any, bool) { return as.encode(v) }
