package docbind

import (
	"github.com/docbind/docbind/i18n"
)

// Format fixes a document shape: its container type D, its primitive
// leaf-value union P, and path addressing over D. A document format is
// implemented once and shared by every Schema built over it.
type Format[D, P any] interface {
	// Empty returns a fresh document with no fields.
	Empty() D
	// Get looks up the primitive at path, reporting false when absent.
	Get(doc D, path Path) (P, bool)
	// Set writes the primitive at path and returns the updated document.
	Set(doc D, path Path, v P) D
	// FromDoc wraps a document as a nested-document primitive.
	FromDoc(doc D) P
	// AsDoc unwraps a nested-document primitive, reporting false for any
	// other variant.
	AsDoc(v P) (D, bool)
}

// DecodeAt is the join point between structural lookup and leaf decoding and
// is implemented exactly once per the whole framework: look up the primitive
// at path; if absent, fail with a single required issue at path; if present,
// invoke dec and rebase every failure it produces under path.
func DecodeAt[D, P, T any](f Format[D, P], doc D, path Path, dec func(P) (T, error)) (T, error) {
	var zero T
	prim, ok := f.Get(doc, path)
	if !ok {
		return zero, Issues{{
			Path:    path.Pointer(),
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, nil),
			Hint:    "required property missing",
		}}
	}
	v, err := dec(prim)
	if err != nil {
		return zero, Rebase(path, err)
	}
	return v, nil
}
