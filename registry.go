package docbind

import (
	"fmt"
	"reflect"
	"sync"
)

// OnceSchema wraps a schema constructor so the schema is built at most once,
// on first use, and safely published to all subsequent callers. This replaces
// the lazily-initialized type-scoped global of hand-rolled designs: the
// returned handle is immutable after first call.
//
//	var userSchema = docbind.OnceSchema(buildUserSchema)
//	u, err := userSchema().Decode(doc)
func OnceSchema[D, P, R any](build func() *Schema[D, P, R]) func() *Schema[D, P, R] {
	return sync.OnceValue(build)
}

// Registry holds erased schemas keyed by record type, letting callers resolve
// a record's canonical schema without static knowledge of the record type.
// The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]AnySchema
}

// Register publishes the canonical schema for record type R. A second
// registration for the same type is a programming error and panics.
func Register[R any](reg *Registry, as AnySchema) {
	rt := reflect.TypeOf((*R)(nil)).Elem()
	if as.RecordType() != rt {
		panic(fmt.Sprintf("docbind: %s: schema decodes %v, registered under %v",
			CodeDuplicateBinding, as.RecordType(), rt))
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.schemas == nil {
		reg.schemas = make(map[reflect.Type]AnySchema)
	}
	if _, dup := reg.schemas[rt]; dup {
		panic(fmt.Sprintf("docbind: %s: schema for %v registered twice", CodeDuplicateBinding, rt))
	}
	reg.schemas[rt] = as
}

// SchemaFor resolves the canonical erased schema for a record type.
func (reg *Registry) SchemaFor(rt reflect.Type) (AnySchema, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	as, ok := reg.schemas[rt]
	return as, ok
}

// Types returns the registered record types, in unspecified order.
func (reg *Registry) Types() []reflect.Type {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]reflect.Type, 0, len(reg.schemas))
	for rt := range reg.schemas {
		out = append(out, rt)
	}
	return out
}
