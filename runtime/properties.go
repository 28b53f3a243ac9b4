package runtime

import (
	"encoding/json"
	"time"
)

// Reserved keys used when a flush maps a response payload back onto its
// return placeholder.
const (
	// ValueKey carries a scalar or non-JSON payload.
	ValueKey = "__value"
	// NextKey carries the pagination cursor of a collection page.
	NextKey = "__next"
)

// PropertySet is the raw name-to-value mapping backing an entity. Values are
// JSON shaped: primitives, nested map[string]any, or []any.
type PropertySet map[string]any

// Has reports whether name is present in the set.
func (ps PropertySet) Has(name string) bool {
	_, ok := ps[name]
	return ok
}

// PropertySink receives raw name/value pairs parsed from a server response.
// Entities, collections and operation results all satisfy it.
type PropertySink interface {
	SetProperty(name string, value any)
}

// Item is anything that can live in a Collection: it must be addressable and
// able to absorb a server payload.
type Item interface {
	PropertySink
	Path() *ResourcePath
}

// decodeValue copies src into dst by JSON round-tripping. It is how raw
// property values become typed value objects without reflection in callers.
func decodeValue(src any, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// parseTime accepts the two shapes a timestamp property can arrive in:
// an RFC 3339 string straight from the wire, or a time.Time set locally.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}
