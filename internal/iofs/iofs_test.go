package iofs_test

import (
	"os"
	"testing"

	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	for _, dir := range []string{
		config.ConfigDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// no data dir is created; a missing dump is a load-time concern
	_, err = os.Stat(config.DataDir(home))
	assert.True(t, os.IsNotExist(err))

	// idempotent
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lineage:")

	// an existing file is not overwritten
	custom := []byte("jobs_number: 3\n")
	require.NoError(t, os.WriteFile(path, custom, 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}
