// Package codec ships the leaf converters for the jsondoc format: one per
// primitive-wire type that can back a record field. Every converter obeys the
// round-trip law: Decode(Encode(x)) == x for all x in its decoded domain.
package codec

import (
	"encoding/json"
	"strconv"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/i18n"
	"github.com/docbind/docbind/jsondoc"
)

// mismatch is the leaf-level invalid_type issue; the schema layer rebases it
// under the binding's path.
func mismatch(expected string, got jsondoc.Kind) error {
	return docbind.Issues{{
		Path:    "/",
		Code:    docbind.CodeInvalidType,
		Message: i18n.T(docbind.CodeInvalidType, nil),
		Params:  map[string]any{"expected": expected, "got": got.String()},
	}}
}

func invalid(hint string, cause error) error {
	return docbind.Issues{{
		Path:    "/",
		Code:    docbind.CodeInvalidValue,
		Message: i18n.T(docbind.CodeInvalidValue, nil),
		Hint:    hint,
		Cause:   cause,
	}}
}

// Text converts between the string primitive and string.
func Text() docbind.Converter[jsondoc.Primitive, string] {
	return docbind.New(
		func(p jsondoc.Primitive) (string, error) {
			s, ok := p.AsString()
			if !ok {
				return "", mismatch("string", p.Kind())
			}
			return s, nil
		},
		jsondoc.String,
	)
}

// Integer converts between the number primitive and int64. Fractional or
// out-of-range numbers fail with invalid_value.
func Integer() docbind.Converter[jsondoc.Primitive, int64] {
	return docbind.New(
		func(p jsondoc.Primitive) (int64, error) {
			n, ok := p.AsNumber()
			if !ok {
				return 0, mismatch("number", p.Kind())
			}
			i, err := strconv.ParseInt(string(n), 10, 64)
			if err != nil {
				return 0, invalid("expected integer", err)
			}
			return i, nil
		},
		jsondoc.Int,
	)
}

// Double converts between the number primitive and float64.
func Double() docbind.Converter[jsondoc.Primitive, float64] {
	return docbind.New(
		func(p jsondoc.Primitive) (float64, error) {
			n, ok := p.AsNumber()
			if !ok {
				return 0, mismatch("number", p.Kind())
			}
			f, err := n.Float64()
			if err != nil {
				return 0, invalid("expected number", err)
			}
			return f, nil
		},
		jsondoc.Float,
	)
}

// Number converts between the number primitive and json.Number, preserving
// the textual form exactly.
func Number() docbind.Converter[jsondoc.Primitive, json.Number] {
	return docbind.New(
		func(p jsondoc.Primitive) (json.Number, error) {
			n, ok := p.AsNumber()
			if !ok {
				return "", mismatch("number", p.Kind())
			}
			return n, nil
		},
		jsondoc.Number,
	)
}

// Boolean converts between the bool primitive and bool.
func Boolean() docbind.Converter[jsondoc.Primitive, bool] {
	return docbind.New(
		func(p jsondoc.Primitive) (bool, error) {
			b, ok := p.AsBool()
			if !ok {
				return false, mismatch("bool", p.Kind())
			}
			return b, nil
		},
		jsondoc.Bool,
	)
}

// Unit is the absent-value leaf: it converts between the null primitive and
// struct{}. Useful for fields that must be present but carry no content.
func Unit() docbind.Converter[jsondoc.Primitive, struct{}] {
	return docbind.New(
		func(p jsondoc.Primitive) (struct{}, error) {
			if !p.IsNull() {
				return struct{}{}, mismatch("null", p.Kind())
			}
			return struct{}{}, nil
		},
		func(struct{}) jsondoc.Primitive { return jsondoc.Null() },
	)
}
