package coupon

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// CouponHandler serves coupon endpoints.
type CouponHandler struct {
	service Service
}

// NewHandler creates a new CouponHandler.
func NewHandler(service Service) *CouponHandler {
	return &CouponHandler{service: service}
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req CreateCouponRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, resp)
}

func (h *CouponHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *CouponHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}

func (h *CouponHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req UpdateCouponRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.NoContent(c)
}

func (h *CouponHandler) Validate(c *gin.Context) {
	var req ValidateCouponRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}
