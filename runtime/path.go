// Package runtime implements the deferred-execution core shared by every
// entity in the SDK: resource paths, lazy property resolution, the pending
// operation queue and lazily populated collections. Nothing in this package
// performs I/O; network round trips happen only when a QueryContext is
// flushed through an Executor.
package runtime

// ResourcePath describes how an entity is addressed relative to its parent.
// Paths form a tree; resolving the full address is pure string composition
// and never touches the network.
type ResourcePath struct {
	segment string
	parent  *ResourcePath
}

// NewPath builds a path one segment below parent. A nil parent makes the
// path a root; its address is the segment alone.
func NewPath(segment string, parent *ResourcePath) *ResourcePath {
	return &ResourcePath{segment: segment, parent: parent}
}

// Child derives the path of a sub-resource one segment below p.
func (p *ResourcePath) Child(segment string) *ResourcePath {
	return &ResourcePath{segment: segment, parent: p}
}

// Segment returns the path's own segment.
func (p *ResourcePath) Segment() string { return p.segment }

// Parent returns the parent path, or nil for a root.
func (p *ResourcePath) Parent() *ResourcePath { return p.parent }

// Address resolves the full address by walking parent links to the root and
// joining segments with "/". Two paths with equal addresses are
// interchangeable everywhere an address is required.
func (p *ResourcePath) Address() string {
	if p == nil {
		return ""
	}
	if p.parent == nil {
		return p.segment
	}
	return p.parent.Address() + "/" + p.segment
}
