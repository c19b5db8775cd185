package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithSessionID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrgn.log")

	cfg := DefaultConfig()
	cfg.LogFile = path
	logger := New(cfg)
	logger.Info("scenario committed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "scenario committed", entry["msg"])
	assert.NotEmpty(t, entry["session_id"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrgn.log")

	cfg := DefaultConfig()
	cfg.LogFile = path
	cfg.Debug = true
	logger := New(cfg)
	logger.Debug("verbose detail")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "verbose detail")
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrgn.log")

	cfg := DefaultConfig()
	cfg.LogFile = path
	logger := New(cfg)
	logger.Debug("should not appear")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	assert.NotContains(t, string(data), "should not appear")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger := New(&Config{})
	assert.NotNil(t, logger)
	// Nop logger must accept writes without a sink.
	logger.Info("ignored")
}
