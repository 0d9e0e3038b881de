package jsondoc

import (
	"encoding/json"
	"fmt"
	"strconv"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/i18n"
)

// FromAny converts a decoded any-tree (as produced by JSON/YAML/CBOR
// unmarshalers) into a Primitive. Unsupported shapes yield a parse_error.
func FromAny(v any) (Primitive, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(t, 10))), nil
	case float64:
		return Float(t), nil
	case []any:
		items := make([]Primitive, 0, len(t))
		for _, it := range t {
			p, err := FromAny(it)
			if err != nil {
				return Primitive{}, err
			}
			items = append(items, p)
		}
		return List(items...), nil
	case map[string]any:
		d := New()
		for k, vv := range t {
			p, err := FromAny(vv)
			if err != nil {
				return Primitive{}, err
			}
			d = d.Set(k, p)
		}
		return Doc(d), nil
	case map[any]any:
		// YAML and CBOR decoders produce any-keyed maps.
		d := New()
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return Primitive{}, docbind.Issues{{
					Path:    "/",
					Code:    docbind.CodeParseError,
					Message: i18n.T(docbind.CodeParseError, nil),
					Hint:    fmt.Sprintf("non-string document key %v", k),
				}}
			}
			p, err := FromAny(vv)
			if err != nil {
				return Primitive{}, err
			}
			d = d.Set(ks, p)
		}
		return Doc(d), nil
	}
	return Primitive{}, docbind.Issues{{
		Path:    "/",
		Code:    docbind.CodeParseError,
		Message: i18n.T(docbind.CodeParseError, nil),
		Hint:    fmt.Sprintf("unsupported value of type %T", v),
	}}
}

// FromAnyDocument converts an any-tree whose root must be an object.
func FromAnyDocument(v any) (Document, error) {
	p, err := FromAny(v)
	if err != nil {
		return Document{}, err
	}
	d, ok := p.AsDoc()
	if !ok {
		return Document{}, docbind.Issues{{
			Path:    "/",
			Code:    docbind.CodeInvalidType,
			Message: i18n.T(docbind.CodeInvalidType, nil),
			Hint:    "expected object at document root",
		}}
	}
	return d, nil
}

// toAny renders the primitive as a JSON-marshalable any-tree; numbers stay
// json.Number so their textual form is preserved.
func toAny(p Primitive) any {
	switch p.kind {
	case KindNull:
		return nil
	case KindBool:
		return p.b
	case KindNumber:
		return p.num
	case KindString:
		return p.str
	case KindList:
		out := make([]any, len(p.list))
		for i, it := range p.list {
			out[i] = toAny(it)
		}
		return out
	case KindObject:
		return docToAny(p.doc)
	}
	return nil
}

func docToAny(d Document) map[string]any {
	out := make(map[string]any, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		out[k] = toAny(v)
	}
	return out
}

// toPlain is toAny with numbers lowered to int64/float64 for encoders that
// would otherwise render json.Number as text (YAML, CBOR).
func toPlain(p Primitive) any {
	switch p.kind {
	case KindNumber:
		if i, err := p.num.Int64(); err == nil {
			return i
		}
		f, _ := p.num.Float64()
		return f
	case KindList:
		out := make([]any, len(p.list))
		for i, it := range p.list {
			out[i] = toPlain(it)
		}
		return out
	case KindObject:
		return docToPlain(p.doc)
	default:
		return toAny(p)
	}
}

func docToPlain(d Document) map[string]any {
	out := make(map[string]any, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		out[k] = toPlain(v)
	}
	return out
}
