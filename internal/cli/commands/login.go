package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/summarly-app/summarly/internal/cli/forms"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with your Summarly workspace",
		Long: `Authenticate with your Summarly workspace.

By default logs in with email and password. Use --provider to start an
OAuth flow in the browser; the provider redirects back to a callback URL
carrying the tokens, which you paste back via --callback-url.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), sessionFromCmd(cmd), opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "Email address (or set SUMMARLY_EMAIL)")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password (or set SUMMARLY_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "OAuth provider: google or microsoft")
	cmd.Flags().StringVar(&opts.callbackURL, "callback-url", "", "Paste the OAuth callback URL to complete a browser login")

	return cmd
}

type loginOptions struct {
	email       string
	password    string
	provider    string
	callbackURL string
}

func runLogin(ctx context.Context, mgr *session.Manager, opts loginOptions) error {
	if opts.provider != "" {
		return runOAuthLogin(mgr, opts.provider)
	}

	if opts.callbackURL != "" {
		return runCallbackLogin(ctx, mgr, opts.callbackURL)
	}

	// Check for environment variables (useful for CI/CD)
	email := opts.email
	if email == "" {
		email = os.Getenv("SUMMARLY_EMAIL")
	}
	password := opts.password
	if password == "" {
		password = os.Getenv("SUMMARLY_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or SUMMARLY_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or SUMMARLY_PASSWORD env var)")
		}
	}

	// Client-side validation runs before any network call.
	if err := forms.ValidateCredentials(email, password); err != nil {
		return err
	}

	fmt.Printf("Logging in to %s...\n", mgr.Client().BaseURL())

	sess, err := mgr.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	printSessionSummary(sess)
	return nil
}

func runOAuthLogin(mgr *session.Manager, provider string) error {
	if provider != "google" && provider != "microsoft" {
		return fmt.Errorf("unsupported provider '%s', must be google or microsoft", provider)
	}

	loginURL := mgr.Client().OAuthLoginURL(provider)

	fmt.Printf("Opening %s login in your browser...\n", provider)
	fmt.Printf("URL: %s\n\n", loginURL)
	fmt.Println("After signing in you will land on a callback URL. Complete the login with:")
	fmt.Println("  summarly login --callback-url '<paste the URL here>'")

	if err := openBrowser(loginURL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, loginURL)
	}

	return nil
}

// runCallbackLogin finishes an OAuth flow from the redirect URL the
// provider handed back: the token pair travels in the query string.
func runCallbackLogin(ctx context.Context, mgr *session.Manager, callbackURL string) error {
	parsed, err := url.Parse(callbackURL)
	if err != nil {
		return fmt.Errorf("invalid callback URL: %w", err)
	}

	query := parsed.Query()
	accessToken := query.Get("access_token")
	refreshToken := query.Get("refresh_token")

	if accessToken == "" || refreshToken == "" {
		return fmt.Errorf("callback URL is missing access_token or refresh_token")
	}

	sess, err := mgr.CompleteTokenPair(ctx, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("login failed: %w\nPlease run 'summarly login' to try again", err)
	}

	printSessionSummary(sess)
	return nil
}

func printSessionSummary(sess *session.Session) {
	fmt.Println("✓ Login successful!")
	name := sess.FullName
	if name == "" {
		name = sess.Email
	}
	fmt.Printf("  User: %s (%s)\n", name, sess.Email)
	if sess.IsAdmin() {
		fmt.Println("  Role: Admin")
	}
}
