package middleware

import (
	"context"
	"net/http"
	"strings"

	"leavedesk/internal/policy"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Identity is the resolved (user, profile) pair for a bearer token.
type Identity struct {
	UserID string
	Email  string
	Role   policy.Role
}

// IdentityResolver is a local interface so the middleware does not depend on
// the auth package. Anything that can turn a token into an Identity fits.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// AuthRequired verifies the bearer token, resolves the caller's profile and
// stores user_id, email and role in the request context.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("email", identity.Email)
		c.Set("role", identity.Role.String())

		ctx := contextutil.WithUserID(c.Request.Context(), identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a route to the given roles. Must run after AuthRequired.
func RequireRoles(allowedRoles ...policy.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, ok := policy.ParseRole(c.GetString("role"))
		if !ok {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden", nil)
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden", nil)
		c.Abort()
	}
}
