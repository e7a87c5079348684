package order

import "github.com/gin-gonic/gin"

// OrderModule implements the app.Module interface for the cart and order domain.
type OrderModule struct {
	handler *OrderHandler
}

// NewModule creates a new OrderModule with the given handler.
// Panics if h is nil.
func NewModule(h *OrderHandler) *OrderModule {
	if h == nil {
		panic("order.NewModule: handler must not be nil")
	}
	return &OrderModule{handler: h}
}

// RegisterRoutes registers cart, checkout and order routes. Everything here
// requires sign-in; the status update endpoint is admin only.
func (m *OrderModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	authed.GET("/cart", m.handler.GetCart)
	authed.POST("/cart/items", m.handler.AddItem)
	authed.PATCH("/cart/items/:id", m.handler.UpdateItem)
	authed.DELETE("/cart/items/:id", m.handler.RemoveItem)
	authed.DELETE("/cart", m.handler.ClearCart)

	authed.POST("/orders/checkout", m.handler.Checkout)
	authed.GET("/orders", m.handler.ListMine)
	authed.GET("/orders/:id", m.handler.Get)
	authed.POST("/orders/:id/cancel", m.handler.Cancel)

	admin.GET("/orders", m.handler.ListAll)
	admin.PATCH("/orders/:id/status", m.handler.UpdateStatus)
}
