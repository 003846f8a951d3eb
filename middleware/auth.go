package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
)

// sessionUserKey is the session field holding the authenticated profile.
const sessionUserKey = "user"

// SaveSessionUser stores the authenticated profile in the session. The
// profile is serialized to JSON so the cookie store never needs type
// registration.
func SaveSessionUser(c *gin.Context, user models.SessionUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(sessionUserKey, string(payload))
	return session.Save()
}

// CurrentUser returns the authenticated profile from the session, if any.
func CurrentUser(c *gin.Context) (*models.SessionUser, bool) {
	session := sessions.Default(c)
	raw, ok := session.Get(sessionUserKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	var user models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// ClearSession destroys the session, returning the caller to anonymous.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// RequireUser aborts with 401 unless the request carries an
// authenticated session.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Not logged in",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager aborts with 401 without a session and 403 without the
// "manager" role.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Not logged in",
			})
			c.Abort()
			return
		}
		if user.Role != "manager" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Manager access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
