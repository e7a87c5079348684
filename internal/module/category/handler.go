package category

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// CategoryHandler handles REST API requests for the category resource.
type CategoryHandler struct {
	svc Service
}

// NewHandler creates a new CategoryHandler with the given service.
func NewHandler(svc Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	category, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, category)
}

// Create handles POST /api/v1/admin/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, category)
}

// Update handles PATCH /api/v1/admin/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateCategoryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, category)
}

// Delete handles DELETE /api/v1/admin/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
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
