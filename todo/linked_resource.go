package todo

import "github.com/corridorhq/corridor-go/runtime"

// LinkedResource is an item in a partner application a task relates to, e.g.
// the email a task was created from. It stores enough about the source
// application to link back to the originating item.
type LinkedResource struct {
	*runtime.Entity
}

// NewLinkedResource constructs a linked resource bound to qc at path.
func NewLinkedResource(qc *runtime.QueryContext, path *runtime.ResourcePath) *LinkedResource {
	return &LinkedResource{Entity: runtime.NewEntity(qc, path)}
}

// ApplicationName names the source application.
func (r *LinkedResource) ApplicationName() string { return r.String("applicationName") }

// DisplayName is the resource's title.
func (r *LinkedResource) DisplayName() string { return r.String("displayName") }

// ExternalID identifies the item in the source application.
func (r *LinkedResource) ExternalID() string { return r.String("externalId") }

// WebURL is a deep link back to the item.
func (r *LinkedResource) WebURL() string { return r.String("webUrl") }

// LinkedResourceCollection is a task's set of linked resources.
type LinkedResourceCollection struct {
	*runtime.Collection
}

// NewLinkedResourceCollection constructs the collection at path.
func NewLinkedResourceCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *LinkedResourceCollection {
	col := runtime.NewCollection(qc, path, func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewLinkedResource(qc, p)
	})
	return &LinkedResourceCollection{Collection: col}
}

// Add enqueues creation of a linked resource and returns the stand-in.
func (c *LinkedResourceCollection) Add(props runtime.PropertySet) *LinkedResource {
	return c.Collection.Add(props).(*LinkedResource)
}
