package jsondoc

import (
	docbind "github.com/docbind/docbind"
)

// Format implements docbind.Format over Document/Primitive. It is stateless;
// the zero value is ready to use.
type Format struct{}

var _ docbind.Format[Document, Primitive] = Format{}

// Empty returns a fresh empty document.
func (Format) Empty() Document { return New() }

// Get resolves a path. Single-key paths address top-level fields; longer
// paths walk through nested-document primitives. The root path resolves to
// the whole document wrapped as a primitive.
func (Format) Get(doc Document, path docbind.Path) (Primitive, bool) {
	keys := path.Keys()
	if len(keys) == 0 {
		return Doc(doc), true
	}
	cur := doc
	for i, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return Primitive{}, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		cur, ok = v.AsDoc()
		if !ok {
			return Primitive{}, false
		}
	}
	return Primitive{}, false
}

// Set writes v at path, creating intermediate documents along the way, and
// returns the updated document. Setting the root path replaces the document
// when v is a nested-document primitive and is a no-op otherwise.
func (Format) Set(doc Document, path docbind.Path, v Primitive) Document {
	keys := path.Keys()
	if len(keys) == 0 {
		if d, ok := v.AsDoc(); ok {
			return d
		}
		return doc
	}
	return setAt(doc, keys, v)
}

func setAt(doc Document, keys []string, v Primitive) Document {
	if len(keys) == 1 {
		return doc.Set(keys[0], v)
	}
	inner := New()
	if cur, ok := doc.Get(keys[0]); ok {
		if d, ok := cur.AsDoc(); ok {
			inner = d
		}
	}
	return doc.Set(keys[0], Doc(setAt(inner, keys[1:], v)))
}

// FromDoc wraps a document as a nested-document primitive.
func (Format) FromDoc(doc Document) Primitive { return Doc(doc) }

// AsDoc unwraps a nested-document primitive.
func (Format) AsDoc(v Primitive) (Document, bool) { return v.AsDoc() }
