package faq

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// FAQHandler handles REST API requests for the FAQ resource.
type FAQHandler struct {
	svc Service
}

// NewHandler creates a new FAQHandler with the given service.
func NewHandler(svc Service) *FAQHandler {
	return &FAQHandler{svc: svc}
}

// List handles GET /api/v1/faqs.
func (h *FAQHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/faqs/:id.
func (h *FAQHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	faq, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, faq)
}

// Create handles POST /api/v1/admin/faqs.
func (h *FAQHandler) Create(c *gin.Context) {
	var req CreateFAQRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	faq, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, faq)
}

// Update handles PATCH /api/v1/admin/faqs/:id.
func (h *FAQHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateFAQRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	faq, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, faq)
}

// Delete handles DELETE /api/v1/admin/faqs/:id.
func (h *FAQHandler) Delete(c *gin.Context) {
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

// FAQModule implements the app.Module interface for the FAQ domain.
type FAQModule struct {
	handler *FAQHandler
}

// NewModule creates a new FAQModule with the given handler.
// Panics if h is nil.
func NewModule(h *FAQHandler) *FAQModule {
	if h == nil {
		panic("faq.NewModule: handler must not be nil")
	}
	return &FAQModule{handler: h}
}

// RegisterRoutes registers public FAQ reads and admin writes.
func (m *FAQModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/faqs", m.handler.List)
	public.GET("/faqs/:id", m.handler.Get)

	admin.POST("/faqs", m.handler.Create)
	admin.PATCH("/faqs/:id", m.handler.Update)
	admin.DELETE("/faqs/:id", m.handler.Delete)
}
