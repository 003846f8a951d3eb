package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
)

func googleTestConfig() *config.Config {
	return &config.Config{
		GoogleClientID:     "test-client-id",
		GoogleClientSecret: "test-client-secret",
		GoogleRedirectURL:  "http://localhost:8080/auth/google/callback",
	}
}

func TestAuthorizationURL(t *testing.T) {
	service := NewGoogleService(googleTestConfig())

	raw := service.AuthorizationURL("state-123")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "state-123", query.Get("state"))
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-client-id", r.PostFormValue("client_id"))
		assert.Equal(t, "auth-code", r.PostFormValue("code"))
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "token-abc"})
	}))
	defer server.Close()

	service := NewGoogleService(googleTestConfig()).WithEndpoints("", server.URL, "")

	token, err := service.ExchangeCode("auth-code")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestExchangeCodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "provider rejects the code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			},
		},
		{
			name: "response without a token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			service := NewGoogleService(googleTestConfig()).WithEndpoints("", server.URL, "")
			_, err := service.ExchangeCode("auth-code")
			assert.Error(t, err)
		})
	}
}

func TestGetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"email":   "user@example.com",
			"name":    "Test User",
			"picture": "https://example.com/avatar.png",
		})
	}))
	defer server.Close()

	service := NewGoogleService(googleTestConfig()).WithEndpoints("", "", server.URL)

	info, err := service.GetUserInfo("token-abc")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", info.Email)
	assert.Equal(t, "Test User", info.Name)
}

func TestGetUserInfoRequiresEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"No Email"}`))
	}))
	defer server.Close()

	service := NewGoogleService(googleTestConfig()).WithEndpoints("", "", server.URL)

	_, err := service.GetUserInfo("token-abc")
	assert.Error(t, err)
}
