package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logger, err := setupLogging(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1), "no-op logger drops everything")
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, err := setupLogging(true)
	require.NoError(t, err)
	logger.Debug("test log message")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
}
