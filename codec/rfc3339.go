package codec

import (
	"time"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

// TimeRFC3339 converts between a text primitive holding an RFC3339 timestamp
// and time.Time. Encoding is canonical: UTC, RFC3339Nano (Go trims trailing
// zeros), so encode-then-decode reproduces the instant exactly.
func TimeRFC3339() docbind.Converter[jsondoc.Primitive, time.Time] {
	return docbind.BimapE(Text(), parseRFC3339, formatRFC3339Canonical)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, invalid("invalid RFC3339 time", err)
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
