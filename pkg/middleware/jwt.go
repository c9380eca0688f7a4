package middleware

import (
	"errors"
	"net/http"
	"strings"

	"SeatShuffler/internal/auth"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware verifies the bearer session token and stores its claims
// under auth.ClaimsKey.
func JWTMiddleware(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Token"})
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			claims, err := tokens.Parse(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token Expired"})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid Token"})
			}
			c.Set(auth.ClaimsKey, claims)
			return next(c)
		}
	}
}
