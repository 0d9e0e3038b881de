// Package jsondoc is the built-in document format: a JSON-like container of
// named primitive values with path lookup, value equality, stable
// fingerprints, and byte-level bridges for JSON, YAML and CBOR.
package jsondoc

import (
	"encoding/json"
	"strconv"
)

// Kind enumerates the closed primitive variant set of the format.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	}
	return "<unknown kind>"
}

// Primitive is one leaf value of a document: a tagged union over the closed
// Kind set. Primitives are immutable values; constructors are the only way to
// build them.
type Primitive struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	list []Primitive
	doc  Document
}

// Null returns the null primitive.
func Null() Primitive { return Primitive{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Primitive { return Primitive{kind: KindBool, b: b} }

// Number wraps a number verbatim. Numbers are held as json.Number so integer
// precision survives round trips.
func Number(n json.Number) Primitive { return Primitive{kind: KindNumber, num: n} }

// Int wraps an integer.
func Int(i int64) Primitive {
	return Primitive{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}
}

// Float wraps a floating-point number using the shortest representation that
// round-trips.
func Float(f float64) Primitive {
	return Primitive{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// String wraps text.
func String(s string) Primitive { return Primitive{kind: KindString, str: s} }

// List wraps an ordered sequence of primitives.
func List(items ...Primitive) Primitive {
	return Primitive{kind: KindList, list: append([]Primitive(nil), items...)}
}

// Doc wraps a nested document.
func Doc(d Document) Primitive { return Primitive{kind: KindObject, doc: d} }

// Kind reports the variant of the primitive.
func (p Primitive) Kind() Kind { return p.kind }

// IsNull reports whether the primitive is the null variant.
func (p Primitive) IsNull() bool { return p.kind == KindNull }

// AsBool unwraps a boolean, reporting false for any other variant.
func (p Primitive) AsBool() (bool, bool) { return p.b, p.kind == KindBool }

// AsNumber unwraps a number, reporting false for any other variant.
func (p Primitive) AsNumber() (json.Number, bool) { return p.num, p.kind == KindNumber }

// AsString unwraps text, reporting false for any other variant.
func (p Primitive) AsString() (string, bool) { return p.str, p.kind == KindString }

// AsList unwraps a list, reporting false for any other variant. The returned
// slice is a copy.
func (p Primitive) AsList() ([]Primitive, bool) {
	if p.kind != KindList {
		return nil, false
	}
	return append([]Primitive(nil), p.list...), true
}

// AsDoc unwraps a nested document, reporting false for any other variant.
func (p Primitive) AsDoc() (Document, bool) { return p.doc, p.kind == KindObject }

// Equal reports structural equality: same variant and observably equal
// content. Numbers compare by their textual form ("5" and "5.0" differ).
func (p Primitive) Equal(q Primitive) bool {
	if p.kind != q.kind {
		return false
	}
	switch p.kind {
	case KindNull:
		return true
	case KindBool:
		return p.b == q.b
	case KindNumber:
		return p.num == q.num
	case KindString:
		return p.str == q.str
	case KindList:
		if len(p.list) != len(q.list) {
			return false
		}
		for i := range p.list {
			if !p.list[i].Equal(q.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return p.doc.Equal(q.doc)
	}
	return false
}
