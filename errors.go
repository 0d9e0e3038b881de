package docbind

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"  // a primitive exists at the path but its variant is wrong
	CodeRequired     = "required"      // the path has no primitive in the source document
	CodeInvalidValue = "invalid_value" // the variant matches but the content fails leaf validation
	CodeParseError   = "parse_error"   // byte-level input could not be parsed at all
	// Construction-time programming errors. These never appear in Issues
	// returned from Decode; they are the payload of panics raised while a
	// schema, projection or erased value is being built.
	CodeUnknownKind      = "unknown_kind"
	CodeDuplicateBinding = "duplicate_binding"
)

// Issue represents a single decode failure at one document path.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string","got":"number"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode failures that implements error. Paths of
// sibling properties are disjoint, so appending two collections produced by
// sibling bindings is a disjoint union.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// At returns the first issue recorded for the given path.
func (iss Issues) At(p Path) (Issue, bool) {
	ptr := p.Pointer()
	for _, it := range iss {
		if it.Path == ptr {
			return it, true
		}
	}
	return Issue{}, false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase re-keys every issue under the given outer path: an inner path of "/"
// becomes the outer pointer, any other inner pointer is appended to it. This
// is how a nested decoder's failures surface at their full document address.
// Non-Issues errors are wrapped as a single parse_error at the outer path.
func Rebase(p Path, err error) Issues {
	base := p.Pointer()
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	prefix := base
	if prefix == "/" {
		prefix = "" // root prefixing must not double the separator
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		ip := it.Path
		switch {
		case ip == "" || ip == "/":
			ip = base
		case ip[0] == '/':
			ip = prefix + ip
		default:
			ip = prefix + "/" + ip
		}
		it.Path = ip
		out = append(out, it)
	}
	return out
}
