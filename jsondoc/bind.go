package jsondoc

import (
	"github.com/docbind/docbind"
)

// NewSchema builds a schema over this format. Type parameters are inferred
// from the bindings.
func NewSchema[R any](props ...docbind.Property[Document, Primitive, R]) *docbind.Schema[Document, Primitive, R] {
	return docbind.NewSchema(Format{}, props...)
}

// Prop binds a primitive-valued field over this format. See docbind.Prop.
func Prop[R, T any](name string, path docbind.Path, c docbind.Converter[Primitive, T], get func(R) T, set func(*R, T)) docbind.Property[Document, Primitive, R] {
	return docbind.Prop[Document](name, path, c, get, set)
}

// Embed binds a nested-record field over this format. See docbind.Embed.
func Embed[R, T any](name string, path docbind.Path, nested *docbind.Schema[Document, Primitive, T], get func(R) T, set func(*R, T)) docbind.Property[Document, Primitive, R] {
	return docbind.Embed(name, path, nested, get, set)
}
