package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeJSON parses a JSON document into a Node tree, preserving object key
// order. The stock json.Unmarshal collects objects into unordered maps, so
// this walks the token stream instead; numbers stay in their literal form.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return &Node{Kind: KindScalar, Scalar: Scalar{Type: ScalarNumber, Text: t.String()}}, nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*Node, error) {
	n := &Node{Kind: KindMapping, Keys: []string{}, Children: map[string]*Node{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		if _, dup := n.Children[key]; dup {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		child, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		n.Keys = append(n.Keys, key)
		n.Children[key] = child
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeJSONArray(dec *json.Decoder) (*Node, error) {
	n := &Node{Kind: KindSequence, Items: []*Node{}}
	for dec.More() {
		child, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, child)
	}
	// Closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}
