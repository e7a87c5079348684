package supplier

import "github.com/gin-gonic/gin"

// SupplierModule implements the app.Module interface for the supplier domain.
type SupplierModule struct {
	handler *SupplierHandler
}

// NewModule creates a new SupplierModule with the given handler.
// Panics if h is nil.
func NewModule(h *SupplierHandler) *SupplierModule {
	if h == nil {
		panic("supplier.NewModule: handler must not be nil")
	}
	return &SupplierModule{handler: h}
}

// RegisterRoutes registers the admin supplier routes.
func (m *SupplierModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	admin.GET("/suppliers", m.handler.List)
	admin.GET("/suppliers/:id", m.handler.Get)
	admin.POST("/suppliers", m.handler.Create)
	admin.PATCH("/suppliers/:id", m.handler.Update)
	admin.DELETE("/suppliers/:id", m.handler.Delete)
}
