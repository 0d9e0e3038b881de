package codec

import (
	"testing"
	"time"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

func TestTimeRFC3339_Basic(t *testing.T) {
	c := TimeRFC3339()

	got, err := c.Decode(jsondoc.String("2025-01-01T00:00:00Z"))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out := c.Encode(got)
	if !out.Equal(jsondoc.String("2025-01-01T00:00:00Z")) {
		t.Fatalf("roundtrip mismatch: %v", out)
	}
}

func TestTimeRFC3339_CanonicalizesToUTC(t *testing.T) {
	c := TimeRFC3339()
	loc := time.FixedZone("JST", 9*3600)
	in := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)

	enc := c.Encode(in)
	if !enc.Equal(jsondoc.String("2025-06-01T00:00:00Z")) {
		t.Fatalf("expected canonical UTC form, got %v", enc)
	}
	got, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(in) {
		t.Fatalf("instant changed across roundtrip: %v != %v", got, in)
	}
}

func TestTimeRFC3339_Errors(t *testing.T) {
	c := TimeRFC3339()

	_, err := c.Decode(jsondoc.String("not-a-time"))
	iss, ok := docbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != docbind.CodeInvalidValue {
		t.Fatalf("expected invalid_value, got: %v", err)
	}

	_, err = c.Decode(jsondoc.Int(5))
	iss, ok = docbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != docbind.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}
