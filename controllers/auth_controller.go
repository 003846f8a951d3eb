package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/config"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/middleware"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/services"
)

// oauthStateKey is the session field holding the pending OAuth state.
const oauthStateKey = "oauth_state"

// AuthController drives the login state machine: anonymous -> pending
// OAuth -> authenticated -> anonymous again on logout.
type AuthController struct {
	cfg    *config.Config
	google *services.GoogleService
}

// NewAuthController creates an auth controller from the configuration
// and a Google OAuth client.
func NewAuthController(cfg *config.Config, google *services.GoogleService) *AuthController {
	return &AuthController{cfg: cfg, google: google}
}

// Login handles GET /auth/google - stores a CSRF state in the session
// and redirects to the identity provider
func (ac *AuthController) Login(c *gin.Context) {
	state := randomState()
	session := sessions.Default(c)
	session.Set(oauthStateKey, state)
	if err := session.Save(); err != nil {
		log.Printf("Failed to save login session: %v", err)
		htmlError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}
	c.Redirect(http.StatusFound, ac.google.AuthorizationURL(state))
}

// Callback handles GET /auth/google/callback. The browser is
// mid-redirect here, so failures render HTML rather than JSON.
func (ac *AuthController) Callback(c *gin.Context) {
	session := sessions.Default(c)
	expectedState, _ := session.Get(oauthStateKey).(string)
	session.Delete(oauthStateKey)
	_ = session.Save()

	if expectedState == "" || c.Query("state") != expectedState {
		htmlError(c, http.StatusBadRequest, "Login session expired or invalid. Please try again.")
		return
	}

	code := c.Query("code")
	if code == "" {
		htmlError(c, http.StatusBadRequest, "Google did not return an authorization code.")
		return
	}

	token, err := ac.google.ExchangeCode(code)
	if err != nil {
		log.Printf("OAuth token exchange failed: %v", err)
		htmlError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	profile, err := ac.google.GetUserInfo(token)
	if err != nil {
		log.Printf("OAuth profile fetch failed: %v", err)
		htmlError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	role := "customer"
	if ac.cfg.IsManagerEmail(profile.Email) {
		role = "manager"
	} else if ac.cfg.AllowlistStrict {
		// Historical behavior: non-allow-listed accounts are rejected
		// outright instead of demoted to customer.
		htmlError(c, http.StatusForbidden, "This account is not authorized to access the system.")
		return
	}

	user := models.SessionUser{
		Email:   profile.Email,
		Name:    profile.Name,
		Picture: profile.Picture,
		Role:    role,
	}
	if err := middleware.SaveSessionUser(c, user); err != nil {
		log.Printf("Failed to save user session: %v", err)
		htmlError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, ac.cfg.FrontendURL)
}

// Me handles GET /api/user - the stored profile and role, or 401
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout handles GET /api/logout - clears the session
func (ac *AuthController) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		log.Printf("Failed to clear session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// randomState returns a cryptographically random CSRF token.
func randomState() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// htmlError renders a minimal user-facing error page.
func htmlError(c *gin.Context, status int, message string) {
	page := fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>Login Error</title></head><body><h1>Login Error</h1><p>%s</p></body></html>",
		message,
	)
	c.Data(status, "text/html; charset=utf-8", []byte(page))
}
