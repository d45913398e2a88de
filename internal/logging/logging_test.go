package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "safeguard.log")
	logger, err := New(path, false)
	require.NoError(t, err)

	logger.Info("widget mounted")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "widget mounted", record["msg"])
	assert.Equal(t, "safeguard", record["logger"])
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(path, true)
	require.NoError(t, err)

	logger.Debug("job started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "job started")
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
