package order

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/middleware"
	"github.com/reignite/reignite/internal/pkg"
)

// OrderHandler serves cart, checkout and order endpoints.
type OrderHandler struct {
	service Service
}

// NewHandler creates a new OrderHandler.
func NewHandler(service Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) GetCart(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	resp, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req AddCartItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) UpdateItem(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	itemID, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateCartItemRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) RemoveItem(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	itemID, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	resp, err := h.service.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) ClearCart(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.service.ClearCart(c.Request.Context(), userID); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.NoContent(c)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req CheckoutRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, resp)
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	resp, err := h.service.Get(c.Request.Context(), userID, h.isAdmin(c), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	req := pkg.ParsePageRequest(c)
	page, err := h.service.ListMine(c.Request.Context(), userID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	page, err := h.service.ListAll(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	resp, err := h.service.Cancel(c.Request.Context(), userID, h.isAdmin(c), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateOrderStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *OrderHandler) isAdmin(c *gin.Context) bool {
	return middleware.HasRole(c, domain.RoleAdmin)
}
