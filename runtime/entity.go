package runtime

import "time"

// DefaultResolver supplies a freshly constructed stand-in for a property
// that has not been fetched yet. It is consulted per call, never
// precomputed, because most defaults capture the owning entity's path.
// memoize asks the entity to store the value so repeated reads return the
// same instance; collection-typed defaults need this so queued operations
// accumulate against one shared object.
type DefaultResolver func(name string) (value any, memoize bool, ok bool)

// Entity is a node in the resource graph: a property set plus the path that
// describes how to reach it over the network. Reads never fail for unknown
// names; they fall back to a type-appropriate default or nil.
type Entity struct {
	qc      *QueryContext
	path    *ResourcePath
	props   PropertySet
	resolve DefaultResolver
}

// NewEntity constructs an entity bound to qc at path. Both may be nil for
// detached value-like use; navigation and queuing require them.
func NewEntity(qc *QueryContext, path *ResourcePath) *Entity {
	return &Entity{qc: qc, path: path, props: PropertySet{}}
}

// Context returns the query context operations are queued against.
func (e *Entity) Context() *QueryContext { return e.qc }

// Path returns the entity's resource path.
func (e *Entity) Path() *ResourcePath { return e.path }

// Properties exposes the raw fetched-or-memoized property set.
func (e *Entity) Properties() PropertySet { return e.props }

// BindDefaults installs the per-subtype default resolver. Outermost types
// call this once from their constructor.
func (e *Entity) BindDefaults(r DefaultResolver) { e.resolve = r }

// SetProperty records a raw value, typically backfilled from a server
// response. It implements PropertySink.
func (e *Entity) SetProperty(name string, value any) {
	e.props[name] = value
}

// Property returns the value for name. Precedence: a known value wins; then
// a caller-supplied explicit default, even when the registered table also
// covers the name; then the registered default resolver; then nil. Unknown
// names are never an error: the schema evolves server-side independent of
// this client.
func (e *Entity) Property(name string, explicit any) any {
	if v, ok := e.props[name]; ok {
		return v
	}
	if explicit != nil {
		return explicit
	}
	if e.resolve != nil {
		if v, memoize, ok := e.resolve(name); ok {
			if memoize {
				e.props[name] = v
			}
			return v
		}
	}
	return nil
}

// Load enqueues a read of the entity's own properties. The property set is
// backfilled when the context is flushed.
func (e *Entity) Load() {
	e.qc.Add(NewGet(e.path, e))
}

// Decode copies the raw value stored under name into dst, converting the
// JSON-shaped representation into a typed value object. Missing properties
// leave dst untouched and return nil.
func (e *Entity) Decode(name string, dst any) error {
	v := e.Property(name, nil)
	if v == nil {
		return nil
	}
	return decodeValue(v, dst)
}

// String returns the property as a string, or "" when absent or not a
// string.
func (e *Entity) String(name string) string {
	v, _ := e.Property(name, nil).(string)
	return v
}

// Bool returns the property as a bool, or false when absent.
func (e *Entity) Bool(name string) bool {
	v, _ := e.Property(name, nil).(bool)
	return v
}

// Int returns the property as an int. JSON numbers decode as float64, so
// both shapes are accepted.
func (e *Entity) Int(name string) int {
	switch v := e.Property(name, nil).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Time returns the property as a time.Time, parsing RFC 3339 strings from
// the wire. Absent or malformed values yield the zero time.
func (e *Entity) Time(name string) time.Time {
	v := e.Property(name, nil)
	if v == nil {
		return time.Time{}
	}
	return parseTime(v)
}
