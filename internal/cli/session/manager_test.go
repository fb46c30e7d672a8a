package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summarly-app/summarly/internal/cli/api"
)

// memoryStore is an in-memory TokenStore so tests never touch the OS keyring.
type memoryStore struct {
	access  map[string]string
	refresh map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		access:  make(map[string]string),
		refresh: make(map[string]string),
	}
}

func (s *memoryStore) SaveTokens(host, accessToken, refreshToken string) error {
	s.access[host] = accessToken
	s.refresh[host] = refreshToken
	return nil
}

func (s *memoryStore) AccessToken(host string) (string, error) {
	token, ok := s.access[host]
	if !ok {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

func (s *memoryStore) RefreshToken(host string) (string, error) {
	token, ok := s.refresh[host]
	if !ok {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

func (s *memoryStore) DeleteTokens(host string) error {
	delete(s.access, host)
	delete(s.refresh, host)
	return nil
}

// newBackend spins up a fake API that accepts jane@acme.com / validpassword
// and serves the matching profile for the issued token.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "jane@acme.com" || r.PostForm.Get("password") != "validpassword" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Incorrect email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(api.TokenPair{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "bearer",
		})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(api.User{
			ID:             "user-1",
			Email:          "jane@acme.com",
			FullName:       "Jane Doe",
			Role:           "admin",
			OrganizationID: "org-1",
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestManager_LoginPersistsTokensAndProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	assert.Equal(t, StateAnonymous, mgr.State())

	sess, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, mgr.State())
	assert.Equal(t, "jane@acme.com", sess.Email)
	assert.Equal(t, "admin", sess.Role)
	assert.True(t, sess.IsAdmin())

	// Both tokens are in the store, keyed by host.
	host := mgr.host
	access, err := store.AccessToken(host)
	require.NoError(t, err)
	assert.Equal(t, "access-1", access)
	refresh, err := store.RefreshToken(host)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)

	// Subsequent authenticated calls carry the stored bearer token.
	user, err := mgr.Client().CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestManager_LoginFailureLeavesNoSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	_, err := mgr.Login(context.Background(), "jane@acme.com", "wrongpassword")
	require.Error(t, err)
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Empty(t, store.access)

	require.ErrorIs(t, mgr.RequireAuthentication(), ErrNotAuthenticated)
}

func TestManager_LogoutClearsEverything(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	_, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)

	cachePath, err := mgr.cachePath()
	require.NoError(t, err)
	_, err = os.Stat(cachePath)
	require.NoError(t, err, "profile cache should exist after login")

	require.NoError(t, mgr.Logout())
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Empty(t, store.access)
	assert.Empty(t, store.refresh)

	_, err = os.Stat(cachePath)
	assert.True(t, os.IsNotExist(err), "profile cache should be removed on logout")

	require.ErrorIs(t, mgr.RequireAuthentication(), ErrNotAuthenticated)
	_, err = mgr.Current()
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	mgr := NewManager(newMemoryStore(), "http://localhost:8000")

	require.NoError(t, mgr.Logout())
	require.NoError(t, mgr.Logout())
}

func TestManager_RequireAuthenticationWithoutTokens(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	mgr := NewManager(newMemoryStore(), server.URL)

	// The guard fails on token presence alone; nothing reaches the backend.
	require.ErrorIs(t, mgr.RequireAuthentication(), ErrNotAuthenticated)
	assert.Zero(t, hits)
}

func TestManager_RequireAuthenticationIsOptimistic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store := newMemoryStore()
	require.NoError(t, store.SaveTokens("localhost:8000", "expired-but-present", "r"))

	mgr := NewManager(store, "http://localhost:8000")

	// Presence is enough; expiry is the backend's call to make.
	require.NoError(t, mgr.RequireAuthentication())
	assert.Equal(t, StateAuthenticated, mgr.State())
}

func TestManager_CompleteTokenPairTeardownOnProfileFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	// The callback handed over tokens the profile endpoint rejects.
	_, err := mgr.CompleteTokenPair(context.Background(), "bogus-access", "bogus-refresh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch user profile")

	// No half-built session: the saved tokens were torn down again.
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Empty(t, store.access)
	require.ErrorIs(t, mgr.RequireAuthentication(), ErrNotAuthenticated)
}

func TestManager_CompleteTokenPairSuccess(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	sess, err := mgr.CompleteTokenPair(context.Background(), "access-1", "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", sess.Email)
	assert.Equal(t, StateAuthenticated, mgr.State())
}

func TestManager_CurrentReadsCachedProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	_, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)

	sess, err := mgr.Current()
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", sess.Email)
	assert.Equal(t, "Jane Doe", sess.FullName)
	assert.Equal(t, "access-1", sess.AccessToken)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
}

func TestManager_CurrentWithoutCacheFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store := newMemoryStore()
	require.NoError(t, store.SaveTokens("localhost:8000", "a", "r"))

	mgr := NewManager(store, "http://localhost:8000")

	// Tokens without a cache file still yield a session; identity fields
	// are just empty.
	sess, err := mgr.Current()
	require.NoError(t, err)
	assert.Empty(t, sess.Email)
	assert.Equal(t, "a", sess.AccessToken)
	assert.False(t, sess.IsAdmin())
}

func TestManager_InvalidateEqualsLogout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	_, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)

	require.NoError(t, mgr.Invalidate())
	assert.Empty(t, store.access)
	require.ErrorIs(t, mgr.RequireAuthentication(), ErrNotAuthenticated)
}

func TestManager_IsAdmin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	assert.False(t, mgr.IsAdmin(), "anonymous sessions are never admin")

	_, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)
	assert.True(t, mgr.IsAdmin())
}

func TestManager_TokensNeverInProfileCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	server := newBackend(t)
	store := newMemoryStore()
	mgr := NewManager(store, server.URL)

	_, err := mgr.Login(context.Background(), "jane@acme.com", "validpassword")
	require.NoError(t, err)

	cachePath, err := mgr.cachePath()
	require.NoError(t, err)
	data, err := os.ReadFile(cachePath)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "access-1")
	assert.NotContains(t, string(data), "refresh-1")
}

func TestManager_HostDerivedFromBaseURL(t *testing.T) {
	mgr := NewManager(newMemoryStore(), "https://api.summarly.io/")

	assert.Equal(t, "api.summarly.io", mgr.host)
	assert.Equal(t, "https://api.summarly.io", mgr.Client().BaseURL())
}

func TestManager_CachePathIsPerHost(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	mgr := NewManager(newMemoryStore(), "https://api.summarly.io")

	path, err := mgr.cachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "summarly", "api.summarly.io-session.json"), path)
}
