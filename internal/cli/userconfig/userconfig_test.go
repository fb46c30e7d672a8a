package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIURL)
}

func TestSetAPIURL_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SetAPIURL("https://api.summarly.io"))

	url, err := GetAPIURL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.summarly.io", url)
}

func TestSave_CreatesConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Save(&UserConfig{APIURL: "http://localhost:8000"}))

	path := filepath.Join(home, ".config", "summarly", "config.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"api_url"`)
}

func TestLoad_CorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "summarly")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse user config file")
}
