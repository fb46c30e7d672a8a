package commands

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/session"
	"github.com/summarly-app/summarly/internal/cli/userconfig"
)

// ResolveAPIURL decides which backend to talk to, in priority order:
// the --api-url flag, the SUMMARLY_API_URL environment variable, the user
// config file, then the local development default.
func ResolveAPIURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envURL := os.Getenv("SUMMARLY_API_URL"); envURL != "" {
		return envURL
	}

	if cfgURL, err := userconfig.GetAPIURL(); err == nil && cfgURL != "" {
		return cfgURL
	}

	return api.DefaultBaseURL
}

// newSession wires the production dependencies: keyring-backed token store
// plus an API client that reads the bearer token from it on every request.
func newSession(apiURL string) *session.Manager {
	return session.NewManager(session.KeyringStore{}, apiURL)
}

// authError maps a 401 from any authenticated call into a torn-down
// session plus a re-login hint. Every other error passes through for the
// call site to present.
func authError(mgr *session.Manager, err error) error {
	if api.IsUnauthorized(err) {
		_ = mgr.Invalidate()
		return fmt.Errorf("session expired. Please run 'summarly login' again")
	}
	return err
}

// sessionFromCmd builds the production session manager using the root
// --api-url persistent flag.
func sessionFromCmd(cmd *cobra.Command) *session.Manager {
	apiURL := ""
	if f := cmd.Flag("api-url"); f != nil {
		apiURL = f.Value.String()
	}
	return newSession(ResolveAPIURL(apiURL))
}

// humanSize renders a byte count the way the dashboard does.
func humanSize(size int64) string {
	switch {
	case size >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(size)/(1<<30))
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
