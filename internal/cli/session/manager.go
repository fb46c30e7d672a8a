package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/summarly-app/summarly/internal/cli/api"
)

// State describes where the session is in its lifecycle.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

const (
	cacheDirName  = "summarly"
	cacheFileName = "session.json"
)

// Session is the authenticated identity held by the client. Tokens live in
// the TokenStore; the profile fields are cached on disk so commands can
// show identity without a round trip.
type Session struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	AccessToken    string `json:"-"`
	RefreshToken   string `json:"-"`
}

// IsAdmin reports whether the session's user has the admin role. This is a
// UI affordance only; the backend re-checks on every privileged call.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

// Manager is the single authority on who is logged in and with what
// privileges. It composes the TokenStore with an API client whose bearer
// token is read from that store; commands receive it explicitly instead of
// reaching for package globals.
type Manager struct {
	store  TokenStore
	client *api.Client
	host   string
	state  State
}

// NewManager creates a session manager talking to baseURL, with tokens
// persisted in store keyed by the URL's host.
func NewManager(store TokenStore, baseURL string) *Manager {
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}

	host := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &Manager{
		store:  store,
		client: api.New(baseURL, NewTokenSource(store, host)),
		host:   host,
		state:  StateAnonymous,
	}
}

// Client returns the API client bound to this session.
func (m *Manager) Client() *api.Client {
	return m.client
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Login exchanges credentials for a token pair and populates the session
// from the profile endpoint. Single attempt; on a 4xx the backend's message
// is surfaced and the user has to resubmit.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	m.state = StateAuthenticating

	tokens, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.state = StateAnonymous
		return nil, err
	}

	return m.establish(ctx, tokens)
}

// Signup creates a new organization with an admin account and logs it in.
func (m *Manager) Signup(ctx context.Context, req api.SignupRequest) (*Session, error) {
	m.state = StateAuthenticating

	tokens, err := m.client.Signup(ctx, req)
	if err != nil {
		m.state = StateAnonymous
		return nil, err
	}

	return m.establish(ctx, tokens)
}

// AcceptInvitation activates an invited account and logs it in.
func (m *Manager) AcceptInvitation(ctx context.Context, invitationToken, password string) (*Session, error) {
	m.state = StateAuthenticating

	tokens, err := m.client.AcceptInvitation(ctx, invitationToken, password)
	if err != nil {
		m.state = StateAnonymous
		return nil, err
	}

	return m.establish(ctx, tokens)
}

// CompleteTokenPair finishes a redirect flow (OAuth callback) that handed
// the tokens back out of band. If the profile fetch fails the session is
// torn down completely and the caller sends the user back to login.
func (m *Manager) CompleteTokenPair(ctx context.Context, accessToken, refreshToken string) (*Session, error) {
	m.state = StateAuthenticating

	return m.establish(ctx, &api.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// establish persists the token pair, fetches the current-user profile, and
// caches it. Any failure after the tokens are saved tears everything down
// so a half-built session can never satisfy RequireAuthentication with a
// broken identity.
func (m *Manager) establish(ctx context.Context, tokens *api.TokenPair) (*Session, error) {
	if err := m.store.SaveTokens(m.host, tokens.AccessToken, tokens.RefreshToken); err != nil {
		m.state = StateAnonymous
		return nil, err
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		_ = m.Logout()
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	sess := &Session{
		UserID:         user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
	}

	if err := m.saveCache(sess); err != nil {
		_ = m.Logout()
		return nil, err
	}

	m.state = StateAuthenticated
	return sess, nil
}

// Logout clears both tokens and the cached profile unconditionally. No
// server round trip is needed for correctness.
func (m *Manager) Logout() error {
	m.state = StateAnonymous

	if err := m.store.DeleteTokens(m.host); err != nil {
		return err
	}

	cachePath, err := m.cachePath()
	if err != nil {
		return err
	}
	if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session cache: %w", err)
	}

	return nil
}

// Invalidate tears the session down after the backend rejected a token.
func (m *Manager) Invalidate() error {
	return m.Logout()
}

// RequireAuthentication is the guard every protected command calls before
// requesting data. The check is optimistic: token presence only, validity
// is discovered on the first failed call.
func (m *Manager) RequireAuthentication() error {
	if _, err := m.store.AccessToken(m.host); err != nil {
		return err
	}

	m.state = StateAuthenticated
	return nil
}

// Current returns the session assembled from stored tokens and the cached
// profile. Returns ErrNotAuthenticated when no token is stored.
func (m *Manager) Current() (*Session, error) {
	accessToken, err := m.store.AccessToken(m.host)
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.store.RefreshToken(m.host)
	if err != nil {
		refreshToken = ""
	}

	sess, err := m.loadCache()
	if err != nil {
		return nil, err
	}

	sess.AccessToken = accessToken
	sess.RefreshToken = refreshToken
	return sess, nil
}

// IsAdmin reports whether the logged-in user has the admin role. Anonymous
// sessions are never admin.
func (m *Manager) IsAdmin() bool {
	sess, err := m.Current()
	if err != nil {
		return false
	}
	return sess.IsAdmin()
}

func (m *Manager) cachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", cacheDirName, fmt.Sprintf("%s-%s", m.host, cacheFileName)), nil
}

func (m *Manager) saveCache(sess *Session) error {
	cachePath, err := m.cachePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(cachePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session cache: %w", err)
	}

	return nil
}

func (m *Manager) loadCache() (*Session, error) {
	cachePath, err := m.cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Tokens exist but the profile cache is gone; the identity
			// fields stay empty until the next login.
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to read session cache: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session cache: %w", err)
	}

	return &sess, nil
}
