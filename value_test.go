package docbind_test

import (
	"strings"
	"testing"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/codec"
	"github.com/docbind/docbind/jsondoc"
)

func TestBimap_TotalTransform(t *testing.T) {
	upper := docbind.Bimap(codec.Text(), strings.ToUpper, strings.ToLower)

	got, err := upper.Decode(jsondoc.String("ann"))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got != "ANN" {
		t.Fatalf("unexpected decode: %q", got)
	}
	if p := upper.Encode("ANN"); !p.Equal(jsondoc.String("ann")) {
		t.Fatalf("unexpected encode: %v", p)
	}

	// failure can only come from the underlying converter
	_, err = upper.Decode(jsondoc.Int(1))
	iss, ok := docbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != docbind.CodeInvalidType {
		t.Fatalf("expected underlying invalid_type, got: %v", err)
	}
}

type currency string

func TestBimapE_FallibleTransform(t *testing.T) {
	cur := docbind.BimapE(codec.Text(),
		func(s string) (currency, error) {
			if len(s) != 3 {
				return "", docbind.Issues{{Path: "/", Code: docbind.CodeInvalidValue, Message: "currency must be 3 letters"}}
			}
			return currency(s), nil
		},
		func(c currency) string { return string(c) },
	)

	if got, err := cur.Decode(jsondoc.String("USD")); err != nil || got != "USD" {
		t.Fatalf("decode: %v %v", got, err)
	}

	// secondary transform failure is reported atomically (one issue)
	_, err := cur.Decode(jsondoc.String("DOLLARS"))
	iss, ok := docbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != docbind.CodeInvalidValue {
		t.Fatalf("expected one invalid_value, got: %v", err)
	}

	// underlying failure short-circuits the secondary transform
	_, err = cur.Decode(jsondoc.Bool(true))
	iss, ok = docbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != docbind.CodeInvalidType {
		t.Fatalf("expected one invalid_type, got: %v", err)
	}
}

// Round-trip law across every shipped converter, over representative values.
func TestConverters_RoundTripLaw(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		c := codec.Text()
		for _, s := range []string{"", "Ann", "日本語", "a/b~c"} {
			got, err := c.Decode(c.Encode(s))
			if err != nil || got != s {
				t.Fatalf("roundtrip %q: %v %v", s, got, err)
			}
		}
	})
	t.Run("integer", func(t *testing.T) {
		c := codec.Integer()
		for _, n := range []int64{0, -1, 42, 1<<62 - 1} {
			got, err := c.Decode(c.Encode(n))
			if err != nil || got != n {
				t.Fatalf("roundtrip %d: %v %v", n, got, err)
			}
		}
	})
	t.Run("double", func(t *testing.T) {
		c := codec.Double()
		for _, f := range []float64{0, -2.5, 3.141592653589793, 1e100} {
			got, err := c.Decode(c.Encode(f))
			if err != nil || got != f {
				t.Fatalf("roundtrip %v: %v %v", f, got, err)
			}
		}
	})
	t.Run("boolean", func(t *testing.T) {
		c := codec.Boolean()
		for _, b := range []bool{true, false} {
			got, err := c.Decode(c.Encode(b))
			if err != nil || got != b {
				t.Fatalf("roundtrip %v: %v %v", b, got, err)
			}
		}
	})
	t.Run("unit", func(t *testing.T) {
		c := codec.Unit()
		if _, err := c.Decode(c.Encode(struct{}{})); err != nil {
			t.Fatalf("roundtrip unit: %v", err)
		}
	})
}
