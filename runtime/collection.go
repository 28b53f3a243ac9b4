package runtime

// ItemFactory constructs a collection item bound to the collection's context
// and path.
type ItemFactory func(qc *QueryContext, path *ResourcePath) Item

// TypeResolver picks the factory for one raw record before the item is
// materialized; the type itself is the output of the test. Returning false
// falls back to the collection's base factory. Resolvers must not fail.
type TypeResolver func(props PropertySet) (ItemFactory, bool)

// Collection is a typed, lazily populated sequence of items sharing a
// resource path. Heterogeneous collections install a TypeResolver so each
// item's concrete type is decided from its raw properties.
type Collection struct {
	qc          *QueryContext
	path        *ResourcePath
	base        ItemFactory
	resolveType TypeResolver
	items       []Item
	next        string
}

// NewCollection constructs an empty collection of base-typed items at path.
func NewCollection(qc *QueryContext, path *ResourcePath, base ItemFactory) *Collection {
	return &Collection{qc: qc, path: path, base: base}
}

// SetTypeResolver installs the per-item type resolution rule.
func (c *Collection) SetTypeResolver(r TypeResolver) { c.resolveType = r }

// Context returns the query context the collection queues against.
func (c *Collection) Context() *QueryContext { return c.qc }

// Path returns the collection's resource path. Items share it.
func (c *Collection) Path() *ResourcePath { return c.path }

// Items returns the materialized items in arrival order.
func (c *Collection) Items() []Item { return c.items }

// Len reports the number of materialized items.
func (c *Collection) Len() int { return len(c.items) }

// NextLink returns the pagination cursor of the last fetched page, if the
// server sent one.
func (c *Collection) NextLink() string { return c.next }

// SetProperty implements PropertySink. A flush delivers one raw record per
// call under a positional key, and the pagination cursor under NextKey.
func (c *Collection) SetProperty(name string, value any) {
	if name == NextKey {
		c.next, _ = value.(string)
		return
	}
	switch raw := value.(type) {
	case PropertySet:
		c.Append(raw)
	case map[string]any:
		c.Append(PropertySet(raw))
	}
}

// Append materializes one item from its raw record. The concrete type is
// fixed before construction: the resolver is consulted first and its answer
// cannot change once the item exists. No matching rule means the base type.
func (c *Collection) Append(raw PropertySet) Item {
	factory := c.base
	if c.resolveType != nil {
		if f, ok := c.resolveType(raw); ok {
			factory = f
		}
	}
	item := factory(c.qc, c.path)
	for k, v := range raw {
		item.SetProperty(k, v)
	}
	c.items = append(c.items, item)
	return item
}

// Add enqueues the creation of a new child under the collection's path and
// returns the local stand-in immediately. The stand-in's properties are
// backfilled when the context is flushed.
func (c *Collection) Add(params any) Item {
	item := c.base(c.qc, c.path)
	c.items = append(c.items, item)
	c.qc.Add(NewCreate(c.path, params, item))
	return item
}

// Load enqueues a read of the collection's current page.
func (c *Collection) Load() {
	c.qc.Add(NewGet(c.path, c))
}
