package report

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/pkg"
)

// ReportHandler serves the admin dashboard endpoint.
type ReportHandler struct {
	service Service
}

// NewHandler creates a new ReportHandler.
func NewHandler(service Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	dash, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, dash)
}

// ReportModule implements the app.Module interface for admin reporting.
type ReportModule struct {
	handler *ReportHandler
}

// NewModule creates a new ReportModule with the given handler.
// Panics if h is nil.
func NewModule(h *ReportHandler) *ReportModule {
	if h == nil {
		panic("report.NewModule: handler must not be nil")
	}
	return &ReportModule{handler: h}
}

// RegisterRoutes registers the dashboard route for admins.
func (m *ReportModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	admin.GET("/reports/dashboard", m.handler.Dashboard)
}
