package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/settle/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settled.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
home: /var/lib/settled
debug: true
store:
  name: ledger
log:
  level: error
metrics:
  address: ":2112"
`), 0600))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/settled", cfg.Home)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "ledger", cfg.Store.Name)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, ":2112", cfg.Metrics.Address)
	assert.Equal(t, "/var/lib/settled/data", cfg.StoreDir())
	assert.Equal(t, "/var/lib/settled/keys", cfg.KeysDir())

	t.Setenv("SETTLE_LOG_LEVEL", "debug")
	t.Setenv("SETTLE_STORE_DIR", ":memory:")
	t.Setenv("SETTLE_DEBUG", "false")
	cfg, err = ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "", cfg.StoreDir())

	t.Setenv("SETTLE_DEBUG", "maybe")
	_, err = ReadConfig(path)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "settle", cfg.Store.Name)
	assert.Equal(t, "info", cfg.Log.Level)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.ErrInput.Is(err))
}
