//go:build !no_yaml
// +build !no_yaml

package serialize

import (
	"gopkg.in/yaml.v3"

	"github.com/visionkit/layoutparser"
)

// ToYAML marshals node to YAML.
// Requires: go get gopkg.in/yaml.v3
// To disable YAML support, build with: go build -tags no_yaml
func ToYAML(node *layoutparser.NodeSchema) ([]byte, error) {
	return yaml.Marshal(node)
}

// FromYAML parses a NodeSchema tree from YAML bytes.
// Requires: go get gopkg.in/yaml.v3
// To disable YAML support, build with: go build -tags no_yaml
func FromYAML(data []byte) (*layoutparser.NodeSchema, error) {
	var node layoutparser.NodeSchema
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return &node, nil
}
