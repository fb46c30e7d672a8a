package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		// The backend speaks the OAuth2 password flow: email in "username".
		assert.Equal(t, "jane@acme.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2hunter2", r.PostForm.Get("password"))

		json.NewEncoder(w).Encode(TokenPair{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			TokenType:    "bearer",
		})
	}))
	defer server.Close()

	client := New(server.URL, nil)

	tokens, err := client.Login(context.Background(), "jane@acme.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access-1", tokens.AccessToken)
	assert.Equal(t, "refresh-1", tokens.RefreshToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	}))
	defer server.Close()

	client := New(server.URL, nil)

	_, err := client.Login(context.Background(), "jane@acme.com", "wrongpassword")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Incorrect email or password", apiErr.Detail)
}

func TestSignup_SendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Acme Inc.", req.OrganizationName)
		assert.Equal(t, "jane@acme.com", req.Email)

		json.NewEncoder(w).Encode(TokenPair{AccessToken: "a", RefreshToken: "r"})
	}))
	defer server.Close()

	client := New(server.URL, nil)

	tokens, err := client.Signup(context.Background(), SignupRequest{
		OrganizationName: "Acme Inc.",
		FullName:         "Jane Doe",
		Email:            "jane@acme.com",
		Password:         "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "a", tokens.AccessToken)
}

func TestAcceptInvitation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/accept-invitation", r.URL.Path)

		var req AcceptInvitationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "invite-token-1", req.InvitationToken)

		json.NewEncoder(w).Encode(TokenPair{AccessToken: "a", RefreshToken: "r"})
	}))
	defer server.Close()

	client := New(server.URL, nil)

	_, err := client.AcceptInvitation(context.Background(), "invite-token-1", "newpassword1")
	require.NoError(t, err)
}

func TestOAuthLoginURL(t *testing.T) {
	client := New("https://api.summarly.io", nil)

	assert.Equal(t, "https://api.summarly.io/api/auth/google/login", client.OAuthLoginURL("google"))
	assert.Equal(t, "https://api.summarly.io/api/auth/microsoft/login", client.OAuthLoginURL("microsoft"))
}
