package jsondoc

import (
	"github.com/fxamacker/cbor/v2"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/i18n"
)

// UnmarshalCBOR parses CBOR bytes into a Document. The root must be a map
// with string keys.
func UnmarshalCBOR(data []byte) (Document, error) {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return Document{}, docbind.Issues{{
			Path:    "/",
			Code:    docbind.CodeParseError,
			Message: i18n.T(docbind.CodeParseError, nil),
			Cause:   err,
		}}
	}
	return FromAnyDocument(normalizeCBOR(v))
}

// MarshalCBOR renders a Document as canonical CBOR bytes.
func MarshalCBOR(d Document) ([]byte, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(docToPlain(d))
}

// normalizeCBOR lowers cbor-specific container shapes to the common any-tree
// FromAny accepts.
func normalizeCBOR(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, vv := range t {
			out[k] = normalizeCBOR(vv)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeCBOR(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeCBOR(vv)
		}
		return out
	default:
		return v
	}
}
