package supplier

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// SupplierHandler handles REST API requests for the supplier resource.
// Suppliers are a back-office concern; every route is admin-gated.
type SupplierHandler struct {
	svc Service
}

// NewHandler creates a new SupplierHandler with the given service.
func NewHandler(svc Service) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// List handles GET /api/v1/admin/suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/admin/suppliers/:id.
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	supplier, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, supplier)
}

// Create handles POST /api/v1/admin/suppliers.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	supplier, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, supplier)
}

// Update handles PATCH /api/v1/admin/suppliers/:id.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateSupplierRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	supplier, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, supplier)
}

// Delete handles DELETE /api/v1/admin/suppliers/:id.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.NoContent(c)
}
