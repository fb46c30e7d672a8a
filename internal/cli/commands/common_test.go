package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summarly-app/summarly/internal/cli/userconfig"
)

func TestResolveAPIURL_Priority(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUMMARLY_API_URL", "")

	// Nothing configured: local development default.
	assert.Equal(t, "http://localhost:8000", ResolveAPIURL(""))

	// User config beats the default.
	require.NoError(t, userconfig.SetAPIURL("https://config.summarly.io"))
	assert.Equal(t, "https://config.summarly.io", ResolveAPIURL(""))

	// Environment beats the config file.
	t.Setenv("SUMMARLY_API_URL", "https://env.summarly.io")
	assert.Equal(t, "https://env.summarly.io", ResolveAPIURL(""))

	// The flag beats everything.
	assert.Equal(t, "https://flag.summarly.io", ResolveAPIURL("https://flag.summarly.io"))
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.0 KB", humanSize(1024))
	assert.Equal(t, "2.5 MB", humanSize(int64(2.5*(1<<20))))
	assert.Equal(t, "1.0 GB", humanSize(1<<30))
}
