package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-analogy/sme/src/system/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unmatched_attributes: [id, label]\ninfer: true\n"), 0o644))

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "label"}, cfg.UnmatchedAttributes)
	assert.True(t, cfg.Infer)
}

func TestLoadConfigPropagatesReadErrors(t *testing.T) {
	_, err := engine.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
