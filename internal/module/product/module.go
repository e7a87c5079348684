package product

import "github.com/gin-gonic/gin"

// ProductModule implements the app.Module interface for the product domain.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a new ProductModule with the given handler.
// Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers public catalog reads and admin writes.
func (m *ProductModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/products", m.handler.List)
	public.GET("/products/:id", m.handler.Get)

	admin.POST("/products", m.handler.Create)
	admin.PATCH("/products/:id", m.handler.Update)
	admin.DELETE("/products/:id", m.handler.Delete)
}
