package docbind_test

import (
	"testing"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

// End-to-end: JSON bytes -> Document -> record, and back.
func TestEndToEnd_JSONBytesThroughSchema(t *testing.T) {
	s := personSchema()

	doc, err := jsondoc.Unmarshal([]byte(`{"name":"Ann","age":30}`))
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	p, err := s.Decode(doc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if p != (person{Name: "Ann", Age: 30}) {
		t.Fatalf("unexpected record: %+v", p)
	}

	out, err := jsondoc.Marshal(s.Encode(p))
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	doc2, err := jsondoc.Unmarshal(out)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if !doc.Equal(doc2) {
		t.Fatalf("document roundtrip mismatch: %s", out)
	}
}

func TestEndToEnd_AllProblemsInOnePass(t *testing.T) {
	s := accountSchema()

	// three independent problems: missing id, wrong inner name variant,
	// missing inner age
	doc, err := jsondoc.Unmarshal([]byte(`{"owner":{"name":7}}`))
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	_, err = s.Decode(doc)
	iss, ok := docbind.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if len(iss) != 3 {
		t.Fatalf("expected three issues, got %d: %v", len(iss), iss)
	}
	want := map[string]string{
		"/id":         docbind.CodeRequired,
		"/owner/name": docbind.CodeInvalidType,
		"/owner/age":  docbind.CodeRequired,
	}
	for _, it := range iss {
		code, ok := want[it.Path]
		if !ok {
			t.Fatalf("unexpected issue path %q: %+v", it.Path, it)
		}
		if it.Code != code {
			t.Fatalf("at %s: got %s, want %s", it.Path, it.Code, code)
		}
		delete(want, it.Path)
	}
	if len(want) != 0 {
		t.Fatalf("missing expected issues: %v", want)
	}
}

func TestRebase_PrefixesNestedPaths(t *testing.T) {
	inner := docbind.Issues{
		{Path: "/", Code: docbind.CodeInvalidType},
		{Path: "/leaf", Code: docbind.CodeRequired},
	}
	out := docbind.Rebase(docbind.NewPath("outer"), inner)
	if out[0].Path != "/outer" {
		t.Fatalf("root issue: got %q", out[0].Path)
	}
	if out[1].Path != "/outer/leaf" {
		t.Fatalf("nested issue: got %q", out[1].Path)
	}
}

func BenchmarkSchemaDecode(b *testing.B) {
	s := accountSchema()
	doc := s.Encode(account{ID: "a-1", Owner: person{Name: "Ann", Age: 30}})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.Decode(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSchemaEncode(b *testing.B) {
	s := accountSchema()
	in := account{ID: "a-1", Owner: person{Name: "Ann", Age: 30}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Encode(in)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := docbind.Issues{
		{Path: "/a", Code: docbind.CodeRequired},
		{Path: "/b", Code: docbind.CodeInvalidType},
		{Path: "/c", Code: docbind.CodeInvalidValue},
		{Path: "/d", Code: docbind.CodeRequired},
	}
	msg := iss.Error()
	if msg == "" {
		t.Fatalf("expected a summary")
	}
	// summary caps at three entries and reports the total
	if want := "required at /a; invalid_type at /b; invalid_value at /c; ... (total 4)"; msg != want {
		t.Fatalf("summary:\n got %q\nwant %q", msg, want)
	}
}
