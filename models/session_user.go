package models

// SessionUser is the authenticated profile held in the server-side
// session. It exists only between a successful OAuth callback and logout
// (or cookie expiry) and is never persisted to the database.
type SessionUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"` // "manager" or "customer"
}
