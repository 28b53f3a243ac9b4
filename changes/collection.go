package changes

import "github.com/corridorhq/corridor-go/runtime"

// Collection is the change log: items share its resource path and their
// concrete type is resolved per record.
type Collection struct {
	*runtime.Collection
}

// NewCollection constructs the change log at path.
func NewCollection(qc *runtime.QueryContext, path *runtime.ResourcePath) *Collection {
	base := func(qc *runtime.QueryContext, p *runtime.ResourcePath) runtime.Item {
		return NewChange(qc, p)
	}
	col := runtime.NewCollection(qc, path, base)
	col.SetTypeResolver(resolveChangeType)
	return &Collection{Collection: col}
}

// resolveChangeType picks the concrete change type for one raw record. The
// rules are ordered and the first match wins: ListId+WebId is tested before
// ItemId+ListId, and both before the WebId-only rule, so list items are not
// mistaken for lists or webs. No match falls back to the base Change.
func resolveChangeType(props runtime.PropertySet) (runtime.ItemFactory, bool) {
	switch {
	case props.Has("ListId") && props.Has("WebId"):
		return wrap(func(c *Change) runtime.Item { return &ListChange{Change: c} }), true
	case props.Has("ItemId") && props.Has("ListId"):
		return wrap(func(c *Change) runtime.Item { return &ItemChange{Change: c} }), true
	case props.Has("WebId"):
		return wrap(func(c *Change) runtime.Item { return &WebChange{Change: c} }), true
	case props.Has("UserId"):
		return wrap(func(c *Change) runtime.Item { return &UserChange{Change: c} }), true
	case props.Has("GroupId"):
		return wrap(func(c *Change) runtime.Item { return &GroupChange{Change: c} }), true
	case props.Has("ContentTypeId"):
		return wrap(func(c *Change) runtime.Item { return &ContentTypeChange{Change: c} }), true
	case props.Has("AlertId"):
		return wrap(func(c *Change) runtime.Item { return &AlertChange{Change: c} }), true
	case props.Has("FieldId"):
		return wrap(func(c *Change) runtime.Item { return &FieldChange{Change: c} }), true
	default:
		return nil, false
	}
}

// wrap lifts a typed constructor over the shared Change base into an
// ItemFactory.
func wrap(outer func(*Change) runtime.Item) runtime.ItemFactory {
	return func(qc *runtime.QueryContext, path *runtime.ResourcePath) runtime.Item {
		return outer(NewChange(qc, path))
	}
}
