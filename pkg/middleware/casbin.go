package middleware

import (
	"fmt"
	"net/http"

	"SeatShuffler/internal/auth"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Viewers read the layout; teachers inherit that and may change it.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act
`

var rbacPolicies = [][]string{
	{string(auth.RoleViewer), "/api/layout", http.MethodGet},
	{string(auth.RoleViewer), "/api/layout/roster", http.MethodGet},
	{string(auth.RoleViewer), "/api/session", http.MethodGet},
	{string(auth.RoleTeacher), "/api/layout", http.MethodPost},
	{string(auth.RoleTeacher), "/api/layout/*", http.MethodPost},
	{string(auth.RoleTeacher), "/api/gestures/*", http.MethodPost},
	{string(auth.RoleTeacher), "/api/session", http.MethodDelete},
}

var rbacRoles = [][]string{
	{string(auth.RoleTeacher), string(auth.RoleViewer)},
}

// NewEnforcer builds the in-memory RBAC enforcer for the /api routes.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	enforcer.AddFunction("keyMatch", util.KeyMatchFunc)

	if _, err := enforcer.AddPolicies(rbacPolicies); err != nil {
		return nil, fmt.Errorf("add policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicies(rbacRoles); err != nil {
		return nil, fmt.Errorf("add roles: %w", err)
	}
	return enforcer, nil
}

// CasbinMiddleware enforces RBAC on the route pattern of each request.
// It must run after JWTMiddleware.
func CasbinMiddleware(enforcer *casbin.Enforcer, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.ClaimsFrom(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized: missing session claims"})
			}
			role := string(claims.Role)
			obj := c.Path()
			act := c.Request().Method

			allowed, err := enforcer.Enforce(role, obj, act)
			if err != nil {
				logger.Error("casbin enforce failed", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "RBAC system error"})
			}
			if !allowed {
				logger.Debug("casbin denied",
					zap.String("role", role),
					zap.String("obj", obj),
					zap.String("act", act),
				)
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: insufficient permissions"})
			}
			return next(c)
		}
	}
}
