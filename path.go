package docbind

import (
	"strings"
)

// Path is an ordered sequence of field-name keys addressing a location inside
// a document. The zero value is the document root. Paths are immutable:
// Field and Join return fresh values.
type Path struct {
	keys []string
}

// NewPath builds a path from the given keys, outermost first.
func NewPath(keys ...string) Path {
	if len(keys) == 0 {
		return Path{}
	}
	return Path{keys: append([]string(nil), keys...)}
}

// Field appends one key to the path.
func (p Path) Field(name string) Path {
	ks := make([]string, 0, len(p.keys)+1)
	ks = append(ks, p.keys...)
	ks = append(ks, name)
	return Path{keys: ks}
}

// Join concatenates two paths: the receiver becomes the prefix. This is the
// operation nested decoding uses to re-key inner error paths.
func (p Path) Join(q Path) Path {
	if len(q.keys) == 0 {
		return p
	}
	ks := make([]string, 0, len(p.keys)+len(q.keys))
	ks = append(ks, p.keys...)
	ks = append(ks, q.keys...)
	return Path{keys: ks}
}

// Keys returns a copy of the key sequence.
func (p Path) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len reports the number of keys; zero means the document root.
func (p Path) Len() int { return len(p.keys) }

// Equal reports whether two paths address the same location: the key
// sequences must match element-wise, in order.
func (p Path) Equal(q Path) bool {
	if len(p.keys) != len(q.keys) {
		return false
	}
	for i := range p.keys {
		if p.keys[i] != q.keys[i] {
			return false
		}
	}
	return true
}

// Pointer renders the path as a JSON Pointer. Keys are escaped per RFC 6901:
// '~' -> '~0', '/' -> '~1'. The root renders as "/".
func (p Path) Pointer() string {
	if len(p.keys) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, k := range p.keys {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(k, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// String is the Pointer rendering.
func (p Path) String() string { return p.Pointer() }

// IssueAt creates an Issue at the given path with provided code, message and
// params map. Convenience helper mirroring call sites with many parameters.
func IssueAt(p Path, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}
