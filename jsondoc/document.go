package jsondoc

import "sort"

// Document is the container type of the format: a mapping from field name to
// Primitive with value semantics for equality and fingerprints. The zero
// value is an empty document; Set returns the updated document and must be
// used in place of the receiver.
type Document struct {
	fields map[string]Primitive
}

// New returns an empty document.
func New() Document { return Document{fields: map[string]Primitive{}} }

// Get looks up the primitive stored under key.
func (d Document) Get(key string) (Primitive, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Set stores v under key and returns the updated document.
func (d Document) Set(key string, v Primitive) Document {
	if d.fields == nil {
		d.fields = map[string]Primitive{}
	}
	d.fields[key] = v
	return d
}

// Delete removes key and returns the updated document.
func (d Document) Delete(key string) Document {
	delete(d.fields, key)
	return d
}

// Len reports the number of fields.
func (d Document) Len() int { return len(d.fields) }

// Keys returns the field names in sorted order.
func (d Document) Keys() []string {
	ks := make([]string, 0, len(d.fields))
	for k := range d.fields {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Clone returns a deep copy.
func (d Document) Clone() Document {
	out := Document{fields: make(map[string]Primitive, len(d.fields))}
	for k, v := range d.fields {
		out.fields[k] = clonePrimitive(v)
	}
	return out
}

func clonePrimitive(p Primitive) Primitive {
	switch p.kind {
	case KindList:
		items := make([]Primitive, len(p.list))
		for i, it := range p.list {
			items[i] = clonePrimitive(it)
		}
		return Primitive{kind: KindList, list: items}
	case KindObject:
		return Primitive{kind: KindObject, doc: p.doc.Clone()}
	default:
		return p
	}
}

// Equal reports structural equality: same field set, pairwise equal values.
func (d Document) Equal(o Document) bool {
	if len(d.fields) != len(o.fields) {
		return false
	}
	for k, v := range d.fields {
		w, ok := o.fields[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}
