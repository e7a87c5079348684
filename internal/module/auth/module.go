package auth

import "github.com/gin-gonic/gin"

// AuthModule implements the app.Module interface for the auth domain.
type AuthModule struct {
	handler *AuthHandler
}

// NewModule creates a new AuthModule with the given handler.
// Panics if h is nil.
func NewModule(h *AuthHandler) *AuthModule {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &AuthModule{handler: h}
}

// RegisterRoutes registers auth routes. Login, register, and refresh are
// public; logout needs the bearer token to know whose tokens to revoke.
func (m *AuthModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	grp := public.Group("/auth")
	grp.POST("/register", m.handler.Register)
	grp.POST("/login", m.handler.Login)
	grp.POST("/refresh", m.handler.Refresh)

	authed.POST("/auth/logout", m.handler.Logout)
}
