package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ClaimsKey is the echo context key the JWT middleware stores claims under.
const ClaimsKey = "session"

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// OpenSession handles POST /sessions.
func (h *AuthHandler) OpenSession(c echo.Context) error {
	resp, err := h.service.OpenSession()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// Session handles GET /api/session and echoes the caller's claims.
func (h *AuthHandler) Session(c echo.Context) error {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	return c.JSON(http.StatusOK, SessionInfo{
		SessionID: claims.SessionID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

// ClaimsFrom returns the session claims stored by the JWT middleware.
func ClaimsFrom(c echo.Context) (*SessionClaims, bool) {
	claims, ok := c.Get(ClaimsKey).(*SessionClaims)
	return claims, ok && claims != nil
}
