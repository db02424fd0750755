package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("chicago", []string{"washington", "chicago"}))
	assert.False(t, ContainsString("boston", []string{"washington", "chicago"}))
	assert.False(t, ContainsString("", nil))
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "new york city", NormalizeInput("  New York City\n"))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: info\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
