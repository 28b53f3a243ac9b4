package transport

import "encoding/json"

// EncodePayload normalizes operation parameters into a JSON body: value
// objects and maps are marshalled, null members dropped so optional
// parameters stay absent on the wire, and the optional wrapper name applied.
func EncodePayload(params any, wrapperName string) ([]byte, error) {
	norm, err := normalize(params)
	if err != nil {
		return nil, err
	}
	if wrapperName != "" {
		norm = map[string]any{wrapperName: norm}
	}
	return json.Marshal(norm)
}

// normalize round-trips params through JSON so structs, maps and slices all
// collapse to the same plain shape before pruning.
func normalize(params any) (any, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return prune(decoded), nil
}

func prune(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = prune(item)
		}
		return out
	case []any:
		for i := range val {
			val[i] = prune(val[i])
		}
		return val
	default:
		return v
	}
}
