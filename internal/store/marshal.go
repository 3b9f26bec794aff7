package store

import (
	"encoding/json"
	"fmt"

	"github.com/tmcphillips/skope-interface/internal/query"
)

// marshalFilter serializes a filter map as canonical JSON so equal filters
// store byte-identically. A nil filter stores as the empty object.
func marshalFilter(filter map[string]any) (string, error) {
	data, err := query.MarshalCanonical(filter)
	if err != nil {
		return "", fmt.Errorf("marshal filter: %w", err)
	}
	return string(data), nil
}

// unmarshalFilter decodes a stored filter column. The empty object decodes
// to an empty, non-nil map.
func unmarshalFilter(data string) (map[string]any, error) {
	var filter map[string]any
	if err := json.Unmarshal([]byte(data), &filter); err != nil {
		return nil, fmt.Errorf("unmarshal filter: %w", err)
	}
	if filter == nil {
		filter = map[string]any{}
	}
	return filter, nil
}
