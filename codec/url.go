package codec

import (
	"net/url"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

// URL converts between a text primitive and *url.URL. Only absolute URLs are
// accepted: a relative reference has no stable canonical form to round-trip.
func URL() docbind.Converter[jsondoc.Primitive, *url.URL] {
	return docbind.BimapE(Text(),
		func(s string) (*url.URL, error) {
			u, err := url.Parse(s)
			if err != nil {
				return nil, invalid("invalid URL", err)
			}
			if !u.IsAbs() {
				return nil, invalid("URL must be absolute", nil)
			}
			return u, nil
		},
		func(u *url.URL) string { return u.String() },
	)
}
