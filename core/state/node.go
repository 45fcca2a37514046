package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindMapping is an ordered set of named child nodes.
	KindMapping Kind = iota + 1
	// KindSequence is an ordered list of child nodes.
	KindSequence
	// KindScalar is a leaf value: string, number, boolean or null.
	KindScalar
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "invalid"
	}
}

// ScalarType identifies the primitive type of a scalar node.
type ScalarType uint8

const (
	// ScalarString is a text value.
	ScalarString ScalarType = iota + 1
	// ScalarNumber is an integer or floating point value.
	ScalarNumber
	// ScalarBool is a boolean value.
	ScalarBool
	// ScalarNull is an explicit null.
	ScalarNull
)

// Scalar is the leaf payload of a KindScalar node. Text holds the canonical
// literal: the raw text for strings, the source literal for numbers, and
// "true", "false" or "null" for the rest.
type Scalar struct {
	Type ScalarType
	Text string
}

// Equal reports whether two scalars hold the same typed value. Types must
// match, so the string "1" never equals the number 1. Numbers compare by
// value: 443 and 443.0 are equal regardless of notation.
func (s Scalar) Equal(o Scalar) bool {
	if s.Type != o.Type {
		return false
	}
	if s.Type == ScalarNumber {
		return numberEqual(s.Text, o.Text)
	}
	return s.Text == o.Text
}

// numberEqual compares two numeric literals by value. Integer pairs compare
// exactly in int64; anything else falls back to float64. Literals neither
// parser accepts only match textually.
func numberEqual(a, b string) bool {
	if a == b {
		return true
	}
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		return ai == bi
	}
	af, aErr := strconv.ParseFloat(a, 64)
	bf, bErr := strconv.ParseFloat(b, 64)
	if aErr != nil || bErr != nil {
		return false
	}
	return af == bf
}

// Node is a single value in a configuration tree. Exactly one variant is
// populated, selected by Kind. Trees are built once by a Source or a test
// helper and must not be mutated afterwards.
type Node struct {
	Kind Kind

	// Keys holds mapping keys in document order. KindMapping only.
	Keys []string
	// Children maps each key to its child node. KindMapping only.
	Children map[string]*Node

	// Items holds sequence elements in order. KindSequence only.
	Items []*Node

	// Scalar holds the leaf value. KindScalar only.
	Scalar Scalar
}

// Entry is a key/value pair used to build mapping nodes.
type Entry struct {
	Key   string
	Value *Node
}

// Mapping builds a mapping node from entries, preserving their order.
// Duplicate keys keep the first occurrence.
func Mapping(entries ...Entry) *Node {
	n := &Node{
		Kind:     KindMapping,
		Keys:     make([]string, 0, len(entries)),
		Children: make(map[string]*Node, len(entries)),
	}
	for _, e := range entries {
		if _, dup := n.Children[e.Key]; dup {
			continue
		}
		n.Keys = append(n.Keys, e.Key)
		n.Children[e.Key] = e.Value
	}
	return n
}

// Sequence builds a sequence node.
func Sequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// String builds a string scalar node.
func String(s string) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarString, Text: s}}
}

// Int builds an integer scalar node.
func Int(i int64) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarNumber, Text: strconv.FormatInt(i, 10)}}
}

// Float builds a floating point scalar node.
func Float(f float64) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarNumber, Text: strconv.FormatFloat(f, 'g', -1, 64)}}
}

// Bool builds a boolean scalar node.
func Bool(b bool) *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarBool, Text: strconv.FormatBool(b)}}
}

// Null builds a null scalar node.
func Null() *Node {
	return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarNull, Text: "null"}}
}

// Equal reports deep equality of two trees. Mapping comparison ignores key
// order; sequence comparison is element-wise and order-sensitive; scalars
// compare per Scalar.Equal. A nil node only equals another nil node.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case KindMapping:
		if len(n.Children) != len(o.Children) {
			return false
		}
		for key, child := range n.Children {
			other, ok := o.Children[key]
			if !ok || !child.Equal(other) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(n.Items) != len(o.Items) {
			return false
		}
		for i, item := range n.Items {
			if !item.Equal(o.Items[i]) {
				return false
			}
		}
		return true
	default:
		return n.Scalar.Equal(o.Scalar)
	}
}

// MarshalJSON encodes the tree as JSON with mapping keys in document order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := n.Children[key].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindScalar:
		return n.Scalar.encodeJSON(buf)
	default:
		return fmt.Errorf("cannot encode node of kind %d", n.Kind)
	}
}

func (s Scalar) encodeJSON(buf *bytes.Buffer) error {
	switch s.Type {
	case ScalarString:
		quoted, err := json.Marshal(s.Text)
		if err != nil {
			return err
		}
		buf.Write(quoted)
		return nil
	case ScalarNumber:
		// Literals JSON cannot carry (hex ints, .inf) are emitted quoted.
		if json.Valid([]byte(s.Text)) {
			buf.WriteString(s.Text)
			return nil
		}
		quoted, err := json.Marshal(s.Text)
		if err != nil {
			return err
		}
		buf.Write(quoted)
		return nil
	case ScalarBool, ScalarNull:
		buf.WriteString(s.Text)
		return nil
	default:
		return fmt.Errorf("cannot encode scalar of type %d", s.Type)
	}
}
