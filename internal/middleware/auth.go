package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/reignite/reignite/internal/domain"
)

const (
	userIDContextKey = "user_id"
	rolesContextKey  = "user_roles"
)

// Auth returns a gin middleware that validates the bearer token on the
// Authorization header and stores the authenticated user id and roles in the
// gin context. Requests without a valid token are rejected with 401.
func Auth(jwtSvc jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		token, err := jwtSvc.ValidateAndParse(raw)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		userID, err := strconv.ParseUint(token.UserID, 10, 64)
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		c.Set(userIDContextKey, uint(userID))
		c.Set(rolesContextKey, token.Roles)
		c.Next()
	}
}

// RequireRole returns a gin middleware that rejects authenticated requests
// whose roles claim does not include the given role. It must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(rolesContextKey)
		if rs, ok := roles.([]string); !ok || !slices.Contains(rs, role) {
			c.Abort()
			c.JSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "forbidden",
				"data":    nil,
			})
			return
		}
		c.Next()
	}
}

// UserID extracts the authenticated user id from the gin context.
// The second return value is false when the request is unauthenticated.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDContextKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// MustUserID returns the authenticated user id or a domain error suitable
// for pkg.Error when the request somehow reached a handler unauthenticated.
func MustUserID(c *gin.Context) (uint, error) {
	id, ok := UserID(c)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return id, nil
}

// HasRole reports whether the authenticated request carries the given role.
func HasRole(c *gin.Context, role string) bool {
	v, _ := c.Get(rolesContextKey)
	roles, ok := v.([]string)
	return ok && slices.Contains(roles, role)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Abort()
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": msg,
		"data":    nil,
	})
}
