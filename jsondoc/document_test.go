package jsondoc_test

import (
	"testing"

	docbind "github.com/docbind/docbind"
	"github.com/docbind/docbind/jsondoc"
)

func TestDocument_ValueEquality(t *testing.T) {
	a := jsondoc.New().
		Set("name", jsondoc.String("Ann")).
		Set("tags", jsondoc.List(jsondoc.String("x"), jsondoc.Int(1)))
	b := jsondoc.New().
		Set("tags", jsondoc.List(jsondoc.String("x"), jsondoc.Int(1))).
		Set("name", jsondoc.String("Ann"))

	if !a.Equal(b) {
		t.Fatalf("structurally equal documents must compare equal")
	}
	if a.Equal(b.Clone().Set("name", jsondoc.String("Bob"))) {
		t.Fatalf("differing content must not compare equal")
	}
	if jsondoc.String("5").Equal(jsondoc.Int(5)) {
		t.Fatalf("different variants must not compare equal")
	}
}

func TestDocument_CloneIsDeep(t *testing.T) {
	inner := jsondoc.New().Set("k", jsondoc.Int(1))
	a := jsondoc.New().Set("nested", jsondoc.Doc(inner))
	c := a.Clone()

	inner.Set("k", jsondoc.Int(2))
	got, _ := c.Get("nested")
	d, _ := got.AsDoc()
	v, _ := d.Get("k")
	if !v.Equal(jsondoc.Int(1)) {
		t.Fatalf("clone shares nested state: %v", v)
	}
}

func TestFormat_GetSingleAndNested(t *testing.T) {
	f := jsondoc.Format{}
	doc := jsondoc.New().
		Set("name", jsondoc.String("Ann")).
		Set("owner", jsondoc.Doc(jsondoc.New().Set("age", jsondoc.Int(30))))

	if v, ok := f.Get(doc, docbind.NewPath("name")); !ok || !v.Equal(jsondoc.String("Ann")) {
		t.Fatalf("single-key lookup: %v %v", v, ok)
	}
	if v, ok := f.Get(doc, docbind.NewPath("owner", "age")); !ok || !v.Equal(jsondoc.Int(30)) {
		t.Fatalf("nested lookup: %v %v", v, ok)
	}
	if _, ok := f.Get(doc, docbind.NewPath("missing")); ok {
		t.Fatalf("absent key must report false")
	}
	if _, ok := f.Get(doc, docbind.NewPath("name", "inner")); ok {
		t.Fatalf("walking through a non-document must report false")
	}
}

func TestFormat_SetCreatesIntermediates(t *testing.T) {
	f := jsondoc.Format{}
	doc := f.Set(f.Empty(), docbind.NewPath("a", "b", "c"), jsondoc.Int(1))
	if v, ok := f.Get(doc, docbind.NewPath("a", "b", "c")); !ok || !v.Equal(jsondoc.Int(1)) {
		t.Fatalf("nested set: %v %v", v, ok)
	}
}

func TestFormat_RootPath(t *testing.T) {
	f := jsondoc.Format{}
	doc := jsondoc.New().Set("k", jsondoc.Int(1))
	v, ok := f.Get(doc, docbind.NewPath())
	if !ok {
		t.Fatalf("root lookup must succeed")
	}
	d, ok := f.AsDoc(v)
	if !ok || !d.Equal(doc) {
		t.Fatalf("root lookup must wrap the whole document")
	}
}
