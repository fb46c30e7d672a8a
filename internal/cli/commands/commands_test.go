package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// memoryStore keeps tokens in memory so command tests never touch the OS
// keyring.
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
		return "", session.ErrNotAuthenticated
	}
	return token, nil
}

func (s *memoryStore) RefreshToken(host string) (string, error) {
	token, ok := s.refresh[host]
	if !ok {
		return "", session.ErrNotAuthenticated
	}
	return token, nil
}

func (s *memoryStore) DeleteTokens(host string) error {
	delete(s.access, host)
	delete(s.refresh, host)
	return nil
}

func (s *memoryStore) empty() bool {
	return len(s.access) == 0 && len(s.refresh) == 0
}

// newTestManager wires a session manager against a fake backend with an
// in-memory token store.
func newTestManager(t *testing.T, handler http.Handler) (*session.Manager, *memoryStore) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := newMemoryStore()
	return session.NewManager(store, server.URL), store
}

// loggedInManager is newTestManager with an access token already stored, as
// if the user had logged in earlier.
func loggedInManager(t *testing.T, handler http.Handler) (*session.Manager, *memoryStore) {
	t.Helper()

	mgr, store := newTestManager(t, handler)
	require.NoError(t, store.SaveTokens(managerHost(mgr), "stored-access", "stored-refresh"))
	return mgr, store
}

// managerHost recovers the token-store key the manager uses from the
// client's base URL. httptest URLs look like http://127.0.0.1:PORT.
func managerHost(mgr *session.Manager) string {
	return strings.TrimPrefix(mgr.Client().BaseURL(), "http://")
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
}
