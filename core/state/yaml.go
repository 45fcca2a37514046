package state

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document into a Node tree, preserving mapping key
// order. An empty document decodes to a null node.
func DecodeYAML(data []byte) (*Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// yaml.Unmarshal skips the custom unmarshaler for empty input.
		return Null(), nil
	}
	return &root, nil
}

// UnmarshalYAML builds the node from a raw yaml.v3 node. Mapping keys keep
// their document order; scalar types come from the resolver tags. Duplicate
// mapping keys are rejected.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	return n.fromYAML(value)
}

func (n *Node) fromYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		n.Kind = KindMapping
		n.Keys = make([]string, 0, len(value.Content)/2)
		n.Children = make(map[string]*Node, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			keyNode := value.Content[i]
			key := keyNode.Value
			if _, dup := n.Children[key]; dup {
				return fmt.Errorf("line %d: duplicate mapping key %q", keyNode.Line, key)
			}
			child := &Node{}
			if err := child.fromYAML(value.Content[i+1]); err != nil {
				return err
			}
			n.Keys = append(n.Keys, key)
			n.Children[key] = child
		}
		return nil
	case yaml.SequenceNode:
		n.Kind = KindSequence
		n.Items = make([]*Node, 0, len(value.Content))
		for _, item := range value.Content {
			child := &Node{}
			if err := child.fromYAML(item); err != nil {
				return err
			}
			n.Items = append(n.Items, child)
		}
		return nil
	case yaml.ScalarNode:
		n.Kind = KindScalar
		n.Scalar = scalarFromYAML(value)
		return nil
	case yaml.AliasNode:
		return n.fromYAML(value.Alias)
	case yaml.DocumentNode:
		if len(value.Content) == 0 {
			n.Kind = KindScalar
			n.Scalar = Scalar{Type: ScalarNull, Text: "null"}
			return nil
		}
		return n.fromYAML(value.Content[0])
	default:
		return fmt.Errorf("line %d: unsupported YAML node kind %d", value.Line, value.Kind)
	}
}

func scalarFromYAML(value *yaml.Node) Scalar {
	switch value.Tag {
	case "!!int", "!!float":
		return Scalar{Type: ScalarNumber, Text: value.Value}
	case "!!bool":
		text := "false"
		switch strings.ToLower(value.Value) {
		case "true", "yes", "on", "y":
			text = "true"
		}
		return Scalar{Type: ScalarBool, Text: text}
	case "!!null":
		return Scalar{Type: ScalarNull, Text: "null"}
	default:
		// !!str plus anything exotic (timestamps, binary) stays text.
		return Scalar{Type: ScalarString, Text: value.Value}
	}
}
