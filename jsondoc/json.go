package jsondoc

import (
	"bytes"

	gojson "github.com/goccy/go-json"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/i18n"
)

// Unmarshal parses JSON bytes into a Document. Numbers are kept verbatim via
// json.Number. The root must be an object.
func Unmarshal(data []byte) (Document, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{}, docbind.Issues{{
			Path:    "/",
			Code:    docbind.CodeParseError,
			Message: i18n.T(docbind.CodeParseError, nil),
			Cause:   err,
		}}
	}
	return FromAnyDocument(v)
}

// Marshal renders a Document as JSON bytes. Key order follows Go map
// marshaling (goccy sorts map keys), so output is deterministic.
func Marshal(d Document) ([]byte, error) {
	return gojson.Marshal(docToAny(d))
}
