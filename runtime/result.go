package runtime

// Result is the placeholder a service operation returns synchronously. It
// stays unpopulated until the owning context is flushed; callers hold on to
// it and read Value or Decode afterwards.
type Result struct {
	props     PropertySet
	value     any
	populated bool
}

// NewResult constructs an empty, unpopulated placeholder.
func NewResult() *Result {
	return &Result{props: PropertySet{}}
}

// SetProperty implements PropertySink. Scalar and non-JSON payloads arrive
// under ValueKey; structured payloads arrive key by key.
func (r *Result) SetProperty(name string, value any) {
	if name == ValueKey {
		r.value = value
	} else {
		r.props[name] = value
	}
	r.populated = true
}

// Populated reports whether a flush has delivered a payload.
func (r *Result) Populated() bool { return r.populated }

// Value returns the scalar payload if one arrived, otherwise the structured
// property set, otherwise nil.
func (r *Result) Value() any {
	if r.value != nil {
		return r.value
	}
	if len(r.props) > 0 {
		return r.props
	}
	return nil
}

// Decode converts a structured payload into a typed value object. It is a
// no-op on an unpopulated result.
func (r *Result) Decode(dst any) error {
	if !r.populated {
		return nil
	}
	if r.value != nil {
		return decodeValue(r.value, dst)
	}
	return decodeValue(r.props, dst)
}
