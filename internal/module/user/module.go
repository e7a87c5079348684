package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for the user domain.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers profile routes for signed-in users and user
// management routes for the back office.
func (m *UserModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	authed.GET("/users/me", m.handler.Me)
	authed.PATCH("/users/me", m.handler.UpdateMe)

	admin.GET("/users", m.handler.List)
	admin.GET("/users/:id", m.handler.Get)
	admin.PATCH("/users/:id", m.handler.Update)
	admin.DELETE("/users/:id", m.handler.Delete)
}
