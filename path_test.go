package docbind_test

import (
	"testing"

	docbind "github.com/docbind/docbind"
)

func TestPath_PointerRendering(t *testing.T) {
	if got := docbind.NewPath().Pointer(); got != "/" {
		t.Fatalf("root pointer: got %q", got)
	}
	if got := docbind.NewPath("name").Pointer(); got != "/name" {
		t.Fatalf("single key: got %q", got)
	}
	if got := docbind.NewPath("a", "b", "c").Pointer(); got != "/a/b/c" {
		t.Fatalf("multi key: got %q", got)
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	if got := docbind.NewPath("a/b", "c~d").Pointer(); got != "/a~1b/c~0d" {
		t.Fatalf("escaping: got %q", got)
	}
}

func TestPath_JoinAndEqual(t *testing.T) {
	p1 := docbind.NewPath("outer")
	p2 := docbind.NewPath("inner", "leaf")
	joined := p1.Join(p2)
	if joined.Pointer() != "/outer/inner/leaf" {
		t.Fatalf("join: got %q", joined.Pointer())
	}
	if !joined.Equal(docbind.NewPath("outer", "inner", "leaf")) {
		t.Fatalf("expected equality with element-wise identical path")
	}
	if joined.Equal(docbind.NewPath("outer", "leaf", "inner")) {
		t.Fatalf("order must matter for path equality")
	}
	// Join must not mutate its operands.
	if p1.Pointer() != "/outer" || p2.Pointer() != "/inner/leaf" {
		t.Fatalf("join mutated operands: %q %q", p1.Pointer(), p2.Pointer())
	}
}

func TestPath_FieldAppends(t *testing.T) {
	base := docbind.NewPath("a")
	child := base.Field("b")
	if child.Pointer() != "/a/b" {
		t.Fatalf("field: got %q", child.Pointer())
	}
	if base.Len() != 1 {
		t.Fatalf("Field mutated receiver: %v", base.Pointer())
	}
}
