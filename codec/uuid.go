package codec

import (
	"github.com/google/uuid"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

// UUID converts between a text primitive holding a canonical RFC 4122 string
// and uuid.UUID. Encoding always emits the lowercase hyphenated form, so
// variant spellings normalize on the first round trip.
func UUID() docbind.Converter[jsondoc.Primitive, uuid.UUID] {
	return docbind.BimapE(Text(),
		func(s string) (uuid.UUID, error) {
			u, err := uuid.Parse(s)
			if err != nil {
				return uuid.Nil, invalid("invalid UUID", err)
			}
			return u, nil
		},
		func(u uuid.UUID) string { return u.String() },
	)
}
