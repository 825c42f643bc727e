// Package serialize round-trips layoutparser.NodeSchema trees to and
// from JSON.
package serialize

import (
	"encoding/json"

	"github.com/visionkit/layoutparser"
)

// ToJSON marshals node, its children, and any annotations LayoutParser has
// already attached, into indented JSON.
func ToJSON(node *layoutparser.NodeSchema) ([]byte, error) {
	return json.MarshalIndent(node, "", "  ")
}

// FromJSON parses a NodeSchema tree previously produced by ToJSON (or
// authored by hand in the same shape).
func FromJSON(data []byte) (*layoutparser.NodeSchema, error) {
	var node layoutparser.NodeSchema
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return &node, nil
}
