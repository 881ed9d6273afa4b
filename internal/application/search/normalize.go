package search

import "strings"

const (
	keyStates    = "states"
	keyCities    = "cities"
	keyAmenities = "amenities"
)

// Query is a normalized place-search request. Each slice is deduplicated and
// keeps the order identifiers were first seen in.
type Query struct {
	States    []string
	Cities    []string
	Amenities []string
}

// Unfiltered reports whether the query matches every place.
func (q Query) Unfiltered() bool {
	return len(q.States) == 0 && len(q.Cities) == 0 && len(q.Amenities) == 0
}

// Normalize turns a decoded JSON body into a Query. It never fails: a nil or
// non-object body, a key that is not an array, and non-string or blank
// elements all just contribute nothing. Unknown keys are ignored.
func Normalize(body any) Query {
	obj, ok := body.(map[string]any)
	if !ok {
		return Query{}
	}
	return Query{
		States:    idSet(obj[keyStates]),
		Cities:    idSet(obj[keyCities]),
		Amenities: idSet(obj[keyAmenities]),
	}
}

func idSet(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(arr))
	var out []string
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
