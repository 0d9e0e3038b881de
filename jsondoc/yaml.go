package jsondoc

import (
	"gopkg.in/yaml.v3"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/i18n"
)

// UnmarshalYAML parses a single YAML document into a Document. YAML's
// any-keyed maps are accepted as long as every key is a string.
func UnmarshalYAML(data []byte) (Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Document{}, docbind.Issues{{
			Path:    "/",
			Code:    docbind.CodeParseError,
			Message: i18n.T(docbind.CodeParseError, nil),
			Cause:   err,
		}}
	}
	return FromAnyDocument(v)
}

// MarshalYAML renders a Document as YAML bytes. Numbers are lowered to
// int64/float64 so they render as YAML numbers rather than quoted text.
func MarshalYAML(d Document) ([]byte, error) {
	return yaml.Marshal(docToPlain(d))
}
