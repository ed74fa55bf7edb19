// Package yaml provides an order-preserving YAML codec for roster definitions.
//
// Definitions are YAML mappings whose key order is the declaration order.
package yaml

import (
	"fmt"

	"github.com/zoobzio/roster"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements roster.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() roster.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes entries as a YAML mapping in entry order.
func (c *yamlCodec) Marshal(entries []roster.Entry) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}
		val := &yaml.Node{}
		if err := val.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.Name, err)
		}
		doc.Content = append(doc.Content, key, val)
	}
	return yaml.Marshal(doc)
}

// Unmarshal decodes a YAML mapping into entries in key order.
// An empty or null document yields no entries.
func (c *yamlCodec) Unmarshal(data []byte) ([]roster.Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := []roster.Entry{}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return entries, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 || (root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		return entries, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yaml: expected mapping, got %s", root.Tag)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml: line %d: mapping key must be scalar", key.Line)
		}

		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("entry %s: %w", key.Value, err)
		}
		entries = append(entries, roster.Entry{Name: key.Value, Value: value})
	}

	return entries, nil
}
