package product

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// ProductHandler handles REST API requests for the product resource.
type ProductHandler struct {
	svc Service
}

// NewHandler creates a new ProductHandler with the given service.
func NewHandler(svc Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List handles GET /api/v1/products.
// Supports ?name=<substring>, ?category_id=, ?supplier_id=, and sort keys.
func (h *ProductHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, product)
}

// Create handles POST /api/v1/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, product)
}

// Update handles PATCH /api/v1/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, product)
}

// Delete handles DELETE /api/v1/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
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
