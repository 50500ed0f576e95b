// Package query implements the declarative filter objects shared by the HTTP
// API and the in-memory backend. A filter keys field names to constraints;
// all constraints are ANDed. A constraint is either an exact value or a
// {"$in": [...]} membership test, the same subset MongoDB accepts, so the
// Mongo-backed repos can pass filters through almost verbatim.
package query

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

type Filter map[string]any

// Allow-lists of filterable fields per collection. Keys outside the list are
// silently ignored rather than rejected so optional UI filters stay
// permissive.
var (
	PostFields = map[string]bool{
		"id":                true,
		"title":             true,
		"photography_style": true,
		"created_by":        true,
		"is_sensitive":      true,
		"is_approved":       true,
	}
	UserFields = map[string]bool{
		"email":        true,
		"display_name": true,
		"primary_role": true,
	}
	JoinFields = map[string]bool{
		"id":         true,
		"post_id":    true,
		"user_email": true,
	}
	CommunityFields = map[string]bool{
		"id":       true,
		"name":     true,
		"category": true,
	}
)

// Matches reports whether every allow-listed constraint in f holds for doc.
// A constraint on a field the document lacks never matches.
func Matches(doc map[string]any, f Filter, allowed map[string]bool) bool {
	for key, want := range f {
		if !allowed[key] {
			continue
		}
		got, ok := doc[key]
		if !ok {
			return false
		}
		if !valueMatches(got, want) {
			return false
		}
	}
	return true
}

// Apply returns the sub-collection of docs matching f, in input order.
func Apply(docs []map[string]any, f Filter, allowed map[string]bool) []map[string]any {
	matched := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		if Matches(doc, f, allowed) {
			matched = append(matched, doc)
		}
	}
	return matched
}

// ToBSON translates a filter into the equivalent Mongo query document,
// restricted to the allow-listed fields.
func ToBSON(f Filter, allowed map[string]bool) bson.M {
	out := bson.M{}
	for key, want := range f {
		if !allowed[key] {
			continue
		}
		if spec, ok := asMap(want); ok {
			if in, found := spec["$in"]; found && len(spec) == 1 {
				out[key] = bson.M{"$in": in}
				continue
			}
		}
		out[key] = want
	}
	return out
}

func valueMatches(got, want any) bool {
	if spec, ok := asMap(want); ok {
		if in, found := spec["$in"]; found && len(spec) == 1 {
			return containsValue(in, got)
		}
		// Unknown operators fall through to strict equality against the
		// operator object itself, which never matches a stored scalar.
		return equalValues(got, spec)
	}
	return equalValues(got, want)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Filter:
		return m, true
	default:
		return nil, false
	}
}

func containsValue(list, got any) bool {
	rv := reflect.ValueOf(list)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equalValues(got, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// equalValues compares exactly, with one normalization: all numeric values
// compare as float64. Both JSON and BSON round-trips land numerics there, so
// the filter representation always matches the persisted one.
func equalValues(a, b any) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
