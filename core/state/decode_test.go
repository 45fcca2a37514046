package state_test

import (
	"testing"

	"sentinel/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	t.Run("KeepsKeyOrder", func(t *testing.T) {
		doc := []byte("zulu: 1\nalpha: 2\nmike: 3\n")
		node, err := state.DecodeYAML(doc)
		require.NoError(t, err)
		require.Equal(t, state.KindMapping, node.Kind)
		assert.Equal(t, []string{"zulu", "alpha", "mike"}, node.Keys)
	})

	t.Run("ScalarTypes", func(t *testing.T) {
		doc := []byte(`
port: 443
weight: 1.5
enabled: true
comment: null
name: vs_web_prod
quoted_number: "443"
`)
		node, err := state.DecodeYAML(doc)
		require.NoError(t, err)

		tests := []struct {
			key  string
			typ  state.ScalarType
			text string
		}{
			{"port", state.ScalarNumber, "443"},
			{"weight", state.ScalarNumber, "1.5"},
			{"enabled", state.ScalarBool, "true"},
			{"comment", state.ScalarNull, "null"},
			{"name", state.ScalarString, "vs_web_prod"},
			{"quoted_number", state.ScalarString, "443"},
		}
		for _, tt := range tests {
			child := node.Children[tt.key]
			require.NotNil(t, child, tt.key)
			assert.Equal(t, state.KindScalar, child.Kind, tt.key)
			assert.Equal(t, tt.typ, child.Scalar.Type, tt.key)
			assert.Equal(t, tt.text, child.Scalar.Text, tt.key)
		}
	})

	t.Run("NestedStructures", func(t *testing.T) {
		doc := []byte(`
pool:
  members:
    - 10.0.0.11:8443
    - 10.0.0.12:8443
`)
		node, err := state.DecodeYAML(doc)
		require.NoError(t, err)
		pool := node.Children["pool"]
		require.NotNil(t, pool)
		members := pool.Children["members"]
		require.NotNil(t, members)
		require.Equal(t, state.KindSequence, members.Kind)
		require.Len(t, members.Items, 2)
		assert.Equal(t, "10.0.0.11:8443", members.Items[0].Scalar.Text)
	})

	t.Run("AnchorsResolve", func(t *testing.T) {
		doc := []byte(`
defaults: &tls TLS1.2
primary: *tls
`)
		node, err := state.DecodeYAML(doc)
		require.NoError(t, err)
		assert.Equal(t, "TLS1.2", node.Children["primary"].Scalar.Text)
	})

	t.Run("DuplicateKeyRejected", func(t *testing.T) {
		doc := []byte("port: 443\nport: 8443\n")
		_, err := state.DecodeYAML(doc)
		require.Error(t, err)
	})

	t.Run("EmptyDocumentIsNull", func(t *testing.T) {
		node, err := state.DecodeYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, state.KindScalar, node.Kind)
		assert.Equal(t, state.ScalarNull, node.Scalar.Type)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		_, err := state.DecodeYAML([]byte("key: [unclosed"))
		require.Error(t, err)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("KeepsKeyOrder", func(t *testing.T) {
		doc := []byte(`{"zulu": 1, "alpha": 2, "mike": 3}`)
		node, err := state.DecodeJSON(doc)
		require.NoError(t, err)
		require.Equal(t, state.KindMapping, node.Kind)
		assert.Equal(t, []string{"zulu", "alpha", "mike"}, node.Keys)
	})

	t.Run("ScalarTypes", func(t *testing.T) {
		doc := []byte(`{"port": 443, "weight": 1.5, "enabled": true, "comment": null, "name": "vs_web_prod"}`)
		node, err := state.DecodeJSON(doc)
		require.NoError(t, err)

		assert.Equal(t, state.ScalarNumber, node.Children["port"].Scalar.Type)
		assert.Equal(t, "443", node.Children["port"].Scalar.Text)
		assert.Equal(t, "1.5", node.Children["weight"].Scalar.Text)
		assert.Equal(t, state.ScalarBool, node.Children["enabled"].Scalar.Type)
		assert.Equal(t, state.ScalarNull, node.Children["comment"].Scalar.Type)
		assert.Equal(t, state.ScalarString, node.Children["name"].Scalar.Type)
	})

	t.Run("NestedStructures", func(t *testing.T) {
		doc := []byte(`{"pool": {"members": ["10.0.0.11:8443", "10.0.0.12:8443"]}}`)
		node, err := state.DecodeJSON(doc)
		require.NoError(t, err)
		members := node.Children["pool"].Children["members"]
		require.Equal(t, state.KindSequence, members.Kind)
		require.Len(t, members.Items, 2)
	})

	t.Run("DuplicateKeyRejected", func(t *testing.T) {
		_, err := state.DecodeJSON([]byte(`{"port": 443, "port": 8443}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("TrailingDataRejected", func(t *testing.T) {
		_, err := state.DecodeJSON([]byte(`{"a": 1} {"b": 2}`))
		require.Error(t, err)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		_, err := state.DecodeJSON([]byte(`{"a": `))
		require.Error(t, err)
	})
}

// The same logical document arriving as YAML or as JSON must build equal
// trees, or self-comparison across codecs would report phantom drift.
func TestDecode_CrossCodecEquality(t *testing.T) {
	yamlDoc := []byte(`
virtual_server:
  port: 443
  weight: 1.5
  enabled: true
  monitors:
    - https_head
`)
	jsonDoc := []byte(`{"virtual_server": {"port": 443, "weight": 1.5, "enabled": true, "monitors": ["https_head"]}}`)

	fromYAML, err := state.DecodeYAML(yamlDoc)
	require.NoError(t, err)
	fromJSON, err := state.DecodeJSON(jsonDoc)
	require.NoError(t, err)

	assert.True(t, fromYAML.Equal(fromJSON))
	assert.True(t, fromJSON.Equal(fromYAML))
}
