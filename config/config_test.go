package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logivex/portscout/internal/errors"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portscout.yaml")
	data := "ports: 22,80-90\ntimeout: 250ms\nbanner: true\noutput: xlsx\nfile: out.xlsx\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "22,80-90", cfg.Ports)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Banner)
	assert.Equal(t, "xlsx", cfg.Output)
	assert.Equal(t, "out.xlsx", cfg.File)
	// untouched keys keep their defaults
	assert.Equal(t, "localhost", cfg.Target)
	assert.Equal(t, 100, cfg.Concurrency)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"syntax":      "ports: [1,\n",
		"timeout":     "timeout: -1s\n",
		"concurrency": "concurrency: 0\n",
		"output":      "output: pdf\n",
	}
	for name, data := range tests {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		_, err := Load(path)
		var inErr *errors.InputError
		assert.True(t, stderrors.As(err, &inErr), name)
	}
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
