package category

import "github.com/gin-gonic/gin"

// CategoryModule implements the app.Module interface for the category domain.
type CategoryModule struct {
	handler *CategoryHandler
}

// NewModule creates a new CategoryModule with the given handler.
// Panics if h is nil.
func NewModule(h *CategoryHandler) *CategoryModule {
	if h == nil {
		panic("category.NewModule: handler must not be nil")
	}
	return &CategoryModule{handler: h}
}

// RegisterRoutes registers public catalog reads and admin writes.
func (m *CategoryModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/categories", m.handler.List)
	public.GET("/categories/:id", m.handler.Get)

	admin.POST("/categories", m.handler.Create)
	admin.PATCH("/categories/:id", m.handler.Update)
	admin.DELETE("/categories/:id", m.handler.Delete)
}
