package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/config"
)

func TestDefaultIsConservative(t *testing.T) {
	cfg := config.Default()
	assert.False(t, cfg.LiteralIntRangeCheck)
	assert.False(t, cfg.StrictByDefault)
}

func TestLoadRoundTripsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("literal_int_range_check: true\nstrict_by_default: true\nmax_resolution_depth: 64\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.LiteralIntRangeCheck)
	assert.True(t, cfg.StrictByDefault)
	assert.Equal(t, 64, cfg.MaxResolutionDepth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalYAMLDocumentIsParseable(t *testing.T) {
	cfg := config.Default()
	cfg.LiteralIntRangeCheck = true
	doc, err := cfg.MarshalYAMLDocument()
	require.NoError(t, err)
	assert.Contains(t, doc, "literal_int_range_check: true")
}
