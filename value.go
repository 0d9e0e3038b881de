package docbind

import (
	"github.com/docbind/docbind/i18n"
)

// Converter is a pure bidirectional mapping between one encoded primitive
// value E and one decoded native value T. Decode may fail with Issues keyed
// at the leaf root "/" (the caller rebases them under the binding's path);
// Encode is total and deterministic.
//
// Round-trip law: Decode(Encode(x)) must succeed and equal x for every x the
// converter is designed to represent. New converters are derived only via
// Bimap/BimapE, which preserve the law whenever both secondary transforms are
// themselves round-trip-correct.
type Converter[E, T any] struct {
	decode func(E) (T, error)
	encode func(T) E
}

// New builds a Converter from a fallible decode and a total encode.
func New[E, T any](decode func(E) (T, error), encode func(T) E) Converter[E, T] {
	return Converter[E, T]{decode: decode, encode: encode}
}

// Decode converts an encoded value into the decoded domain.
func (c Converter[E, T]) Decode(e E) (T, error) { return c.decode(e) }

// Encode converts a decoded value back to its encoded form.
func (c Converter[E, T]) Encode(t T) E { return c.encode(t) }

// Bimap derives a Converter[E, U] from c by composing a total secondary
// transform pair. Failure can only come from the underlying converter.
func Bimap[E, T, U any](c Converter[E, T], to func(T) U, from func(U) T) Converter[E, U] {
	return Converter[E, U]{
		decode: func(e E) (U, error) {
			t, err := c.decode(e)
			if err != nil {
				var zero U
				return zero, err
			}
			return to(t), nil
		},
		encode: func(u U) E { return c.encode(from(u)) },
	}
}

// BimapE derives a Converter[E, U] from c by composing a fallible secondary
// transform. Decode applies the underlying decode first and runs `to` only on
// success; leaf conversion is atomic, so exactly one failure is reported.
func BimapE[E, T, U any](c Converter[E, T], to func(T) (U, error), from func(U) T) Converter[E, U] {
	return Converter[E, U]{
		decode: func(e E) (U, error) {
			t, err := c.decode(e)
			if err != nil {
				var zero U
				return zero, err
			}
			u, err := to(t)
			if err != nil {
				var zero U
				if _, ok := AsIssues(err); ok {
					return zero, err
				}
				return zero, Issues{{
					Path:    "/",
					Code:    CodeInvalidValue,
					Message: i18n.T(CodeInvalidValue, nil),
					Hint:    err.Error(),
					Cause:   err,
				}}
			}
			return u, nil
		},
		encode: func(u U) E { return c.encode(from(u)) },
	}
}
