package coupon

import "github.com/gin-gonic/gin"

// CouponModule implements the app.Module interface for the coupon domain.
type CouponModule struct {
	handler *CouponHandler
}

// NewModule creates a new CouponModule with the given handler.
// Panics if h is nil.
func NewModule(h *CouponHandler) *CouponModule {
	if h == nil {
		panic("coupon.NewModule: handler must not be nil")
	}
	return &CouponModule{handler: h}
}

// RegisterRoutes registers coupon routes. Validation is available to any
// signed-in user; management is admin only.
func (m *CouponModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	authed.POST("/coupons/validate", m.handler.Validate)

	admin.GET("/coupons", m.handler.List)
	admin.GET("/coupons/:id", m.handler.Get)
	admin.POST("/coupons", m.handler.Create)
	admin.PATCH("/coupons/:id", m.handler.Update)
	admin.DELETE("/coupons/:id", m.handler.Delete)
}
