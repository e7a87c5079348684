package hobby

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// HobbyHandler handles REST API requests for the hobby resource.
type HobbyHandler struct {
	svc Service
}

// NewHandler creates a new HobbyHandler with the given service.
func NewHandler(svc Service) *HobbyHandler {
	return &HobbyHandler{svc: svc}
}

// List handles GET /api/v1/hobbies.
func (h *HobbyHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/hobbies/:id.
func (h *HobbyHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	hobby, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, hobby)
}

// Create handles POST /api/v1/admin/hobbies.
func (h *HobbyHandler) Create(c *gin.Context) {
	var req CreateHobbyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	hobby, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, hobby)
}

// Update handles PATCH /api/v1/admin/hobbies/:id.
func (h *HobbyHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateHobbyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	hobby, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, hobby)
}

// Delete handles DELETE /api/v1/admin/hobbies/:id.
func (h *HobbyHandler) Delete(c *gin.Context) {
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
