package state_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sentinel/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Load(t *testing.T) {
	t.Run("YAMLDocument", func(t *testing.T) {
		src := state.NewFileSource("testdata/gold_standard.yaml", state.FormatAuto)
		node, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, state.KindMapping, node.Kind)
		assert.Contains(t, node.Keys, "virtual_server")
	})

	t.Run("JSONDocument", func(t *testing.T) {
		src := state.NewFileSource("testdata/f5_actual_state.json", state.FormatAuto)
		node, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, state.KindMapping, node.Kind)
		assert.Contains(t, node.Keys, "virtual_server")
	})

	t.Run("MissingFile", func(t *testing.T) {
		src := state.NewFileSource("testdata/does_not_exist.yaml", state.FormatAuto)
		_, err := src.Load(context.Background())
		require.Error(t, err)

		var loadErr *state.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Origin, "does_not_exist.yaml")
	})

	t.Run("TopLevelMustBeMapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sequence.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

		src := state.NewFileSource(path, state.FormatAuto)
		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mapping")
	})

	t.Run("ExplicitFormatOverridesExtension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.txt")
		require.NoError(t, os.WriteFile(path, []byte(`{"root": {}}`), 0o600))

		src := state.NewFileSource(path, state.FormatJSON)
		node, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"root"}, node.Keys)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.txt")
		require.NoError(t, os.WriteFile(path, []byte(`{"root": {}}`), 0o600))

		src := state.NewFileSource(path, state.FormatAuto)
		_, err := src.Load(context.Background())
		require.Error(t, err)

		var loadErr *state.LoadError
		assert.True(t, errors.As(err, &loadErr))
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("key: [unclosed"), 0o600))

		src := state.NewFileSource(path, state.FormatAuto)
		_, err := src.Load(context.Background())
		require.Error(t, err)

		var loadErr *state.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, loadErr.Origin, "broken.yaml")
	})
}
