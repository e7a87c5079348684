package project

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/middleware"
	"github.com/reignite/reignite/internal/pkg"
)

// ProjectHandler serves project showcase and review endpoints.
type ProjectHandler struct {
	service Service
}

// NewHandler creates a new ProjectHandler.
func NewHandler(service Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req CreateProjectRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, resp)
}

func (h *ProjectHandler) Get(c *gin.Context) {
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

func (h *ProjectHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}

func (h *ProjectHandler) Update(c *gin.Context) {
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
	var req UpdateProjectRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.Update(c.Request.Context(), userID, h.isAdmin(c), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, resp)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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
	if err := h.service.Delete(c.Request.Context(), userID, h.isAdmin(c), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.NoContent(c)
}

func (h *ProjectHandler) AddReview(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	projectID, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req CreateReviewRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.service.AddReview(c.Request.Context(), userID, projectID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, resp)
}

func (h *ProjectHandler) ListReviews(c *gin.Context) {
	projectID, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	req := pkg.ParsePageRequest(c)
	page, err := h.service.ListReviews(c.Request.Context(), projectID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}

func (h *ProjectHandler) DeleteReview(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	reviewID, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if err := h.service.DeleteReview(c.Request.Context(), userID, h.isAdmin(c), reviewID); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.NoContent(c)
}

func (h *ProjectHandler) isAdmin(c *gin.Context) bool {
	return middleware.HasRole(c, domain.RoleAdmin)
}
