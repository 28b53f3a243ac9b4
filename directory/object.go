// Package directory models the directory side of the Corridor service:
// directory objects, service principals, audit records, sign-in activity
// and the security root. Every type here is a thin, typed view over the
// runtime property set; nothing performs I/O until the owning query context
// is flushed.
package directory

import (
	"time"

	"github.com/corridorhq/corridor-go/runtime"
)

// Object is the base every addressable directory entity embeds.
type Object struct {
	*runtime.Entity
}

// NewObject constructs a directory object bound to qc at path.
func NewObject(qc *runtime.QueryContext, path *runtime.ResourcePath) *Object {
	return &Object{Entity: runtime.NewEntity(qc, path)}
}

// ID returns the object's directory identifier.
func (o *Object) ID() string { return o.String("id") }

// DisplayName returns the name registered for the object.
func (o *Object) DisplayName() string { return o.String("displayName") }

// DeletedDateTime reports when the object was soft-deleted, zero if live.
func (o *Object) DeletedDateTime() time.Time { return o.Time("deletedDateTime") }

// Delete enqueues removal of the object.
func (o *Object) Delete() {
	o.Context().Add(runtime.NewDelete(o.Path()))
}

// Update enqueues a patch of the given properties.
func (o *Object) Update(props runtime.PropertySet) {
	o.Context().Add(runtime.NewUpdate(o.Path(), props))
}

// ObjectCollection is a set of directory objects sharing a resource path,
// e.g. the owners of a service principal.
type ObjectCollection struct {
	*runtime.Collection
}

// NewObjectCollection constructs an empty, lazily populated collection.
func NewObjectCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *ObjectCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewObject(qc, p)
	})
	return &ObjectCollection{Collection: col}
}

// Add enqueues creation of a directory object under the collection's path
// and returns the local stand-in immediately.
func (c *ObjectCollection) Add(props runtime.PropertySet) *Object {
	return c.Collection.Add(props).(*Object)
}

// Remove enqueues removal of a member object.
func (c *ObjectCollection) Remove(o *Object) {
	o.Delete()
}
