package hobby

import "github.com/gin-gonic/gin"

// HobbyModule implements the app.Module interface for the hobby domain.
type HobbyModule struct {
	handler *HobbyHandler
}

// NewModule creates a new HobbyModule with the given handler.
// Panics if h is nil.
func NewModule(h *HobbyHandler) *HobbyModule {
	if h == nil {
		panic("hobby.NewModule: handler must not be nil")
	}
	return &HobbyModule{handler: h}
}

// RegisterRoutes registers public hobby reads and admin writes.
func (m *HobbyModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/hobbies", m.handler.List)
	public.GET("/hobbies/:id", m.handler.Get)

	admin.POST("/hobbies", m.handler.Create)
	admin.PATCH("/hobbies/:id", m.handler.Update)
	admin.DELETE("/hobbies/:id", m.handler.Delete)
}
