package main

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logivex/portscout/config"
)

// This test mutates the global flag set; it must not set -p, which
// resolvePorts checks.
func TestMergeConfig(t *testing.T) {
	cfg, err := mergeConfig(config.Default())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg, "unset flags leave the config alone")

	require.NoError(t, flag.Set("timeout", "250ms"))
	require.NoError(t, flag.Set("o", "csv"))
	require.NoError(t, flag.Set("banner", "true"))

	cfg, err = mergeConfig(config.Default())
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "csv", cfg.Output)
	assert.True(t, cfg.Banner)
	assert.Equal(t, 100, cfg.Concurrency)

	require.NoError(t, flag.Set("timeout", "soon"))
	_, err = mergeConfig(config.Default())
	assert.Error(t, err)
	require.NoError(t, flag.Set("timeout", "1s"))
}
