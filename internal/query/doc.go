package query

import (
	"encoding/json"
	"fmt"
)

// ToDoc converts an entity to its wire/storage document form via a JSON round
// trip. Filtering always runs against this representation so that predicate
// values and persisted values agree.
func ToDoc(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %v", err)
	}
	return doc, nil
}

// FromDoc decodes a document (or slice of documents) back into a typed value.
func FromDoc(doc any, out any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal document: %v", err)
	}
	return nil
}
