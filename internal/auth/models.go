package auth

import "github.com/golang-jwt/jwt/v5"

// Role decides what a token holder may do with a session.
type Role string

const (
	// RoleTeacher may generate layouts and rearrange seats.
	RoleTeacher Role = "teacher"
	// RoleViewer may only read the layout, e.g. a projector or print screen.
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleViewer
}

// SessionClaims bind a bearer token to one classroom session.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}

// OpenSessionResponse is returned when a new session is opened.
type OpenSessionResponse struct {
	SessionID   string `json:"session_id"`
	Token       string `json:"token"`
	ViewerToken string `json:"viewer_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// SessionInfo describes the session a token belongs to.
type SessionInfo struct {
	SessionID string `json:"session_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
