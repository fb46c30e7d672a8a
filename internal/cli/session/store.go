package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/summarly-app/summarly/internal/cli/api"
)

const service = "summarly-cli"

// ErrNotAuthenticated is returned when no access token is stored.
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'summarly login' first")

// TokenStore persists the access/refresh token pair across invocations.
// It is an interface so tests can swap in an in-memory store instead of
// the OS keyring.
type TokenStore interface {
	SaveTokens(host, accessToken, refreshToken string) error
	AccessToken(host string) (string, error)
	RefreshToken(host string) (string, error)
	DeleteTokens(host string) error
}

// KeyringStore stores tokens in the OS keychain/credential manager, keyed
// per API host so multiple environments can stay logged in at once.
type KeyringStore struct{}

func accessKey(host string) string {
	return fmt.Sprintf("access_token-%s", host)
}

func refreshKey(host string) string {
	return fmt.Sprintf("refresh_token-%s", host)
}

// SaveTokens persists both tokens in the OS keychain/credential manager.
func (KeyringStore) SaveTokens(host, accessToken, refreshToken string) error {
	if err := keyring.Set(service, accessKey(host), accessToken); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	if err := keyring.Set(service, refreshKey(host), refreshToken); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// AccessToken retrieves the access token from the keychain.
func (KeyringStore) AccessToken(host string) (string, error) {
	token, err := keyring.Get(service, accessKey(host))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load access token: %w", err)
	}
	return token, nil
}

// RefreshToken retrieves the refresh token from the keychain. The token is
// stored for completeness but never exchanged client-side; expired access
// tokens surface as failed requests instead.
func (KeyringStore) RefreshToken(host string) (string, error) {
	token, err := keyring.Get(service, refreshKey(host))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load refresh token: %w", err)
	}
	return token, nil
}

// DeleteTokens removes both tokens. Missing entries are not an error.
func (KeyringStore) DeleteTokens(host string) error {
	for _, key := range []string{accessKey(host), refreshKey(host)} {
		if err := keyring.Delete(service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete token: %w", err)
		}
	}
	return nil
}

// tokenSource adapts a TokenStore to the api.TokenSource contract.
type tokenSource struct {
	store TokenStore
	host  string
}

func (ts tokenSource) Token() (string, error) {
	return ts.store.AccessToken(ts.host)
}

// NewTokenSource returns an api.TokenSource backed by store for the given
// API host.
func NewTokenSource(store TokenStore, host string) api.TokenSource {
	return tokenSource{store: store, host: host}
}
