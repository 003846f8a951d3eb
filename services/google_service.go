package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleUserInfo is the profile returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleService drives the authorization-code dance against Google:
// build the redirect URL, exchange the callback code for a token, fetch
// the profile.
type GoogleService struct {
	clientID     string
	clientSecret string
	redirectURL  string
	httpClient   *http.Client

	// Endpoint overrides so tests can point at an httptest server.
	authURL     string
	tokenURL    string
	userInfoURL string
}

// NewGoogleService creates a Google OAuth client from the configuration.
func NewGoogleService(cfg *config.Config) *GoogleService {
	return &GoogleService{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURL:  cfg.GoogleRedirectURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		authURL:     googleAuthURL,
		tokenURL:    googleTokenURL,
		userInfoURL: googleUserInfoURL,
	}
}

// WithEndpoints overrides the Google endpoints; used by tests.
func (s *GoogleService) WithEndpoints(authURL, tokenURL, userInfoURL string) *GoogleService {
	s.authURL = authURL
	s.tokenURL = tokenURL
	s.userInfoURL = userInfoURL
	return s
}

// AuthorizationURL builds the redirect URL that starts the login flow.
// The state parameter is round-tripped through Google for CSRF checking.
func (s *GoogleService) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("state", state)
	return s.authURL + "?" + params.Encode()
}

// ExchangeCode trades the callback's authorization code for an access
// token.
func (s *GoogleService) ExchangeCode(code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", s.redirectURL)

	resp, err := s.httpClient.Post(s.tokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to exchange code for token: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token exchange returned status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}
	return tokenResponse.AccessToken, nil
}

// GetUserInfo fetches the verified profile for an access token.
func (s *GoogleService) GetUserInfo(accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequest("GET", s.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call userinfo endpoint: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if userInfo.Email == "" {
		return nil, fmt.Errorf("userinfo response contained no email")
	}
	return &userInfo, nil
}
