package project

import "github.com/gin-gonic/gin"

// ProjectModule implements the app.Module interface for the project domain.
type ProjectModule struct {
	handler *ProjectHandler
}

// NewModule creates a new ProjectModule with the given handler.
// Panics if h is nil.
func NewModule(h *ProjectHandler) *ProjectModule {
	if h == nil {
		panic("project.NewModule: handler must not be nil")
	}
	return &ProjectModule{handler: h}
}

// RegisterRoutes registers project and review routes. Browsing is public;
// writes require sign-in, with ownership enforced in the service.
func (m *ProjectModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/projects", m.handler.List)
	public.GET("/projects/:id", m.handler.Get)
	public.GET("/projects/:id/reviews", m.handler.ListReviews)

	authed.POST("/projects", m.handler.Create)
	authed.PATCH("/projects/:id", m.handler.Update)
	authed.DELETE("/projects/:id", m.handler.Delete)
	authed.POST("/projects/:id/reviews", m.handler.AddReview)
	authed.DELETE("/reviews/:id", m.handler.DeleteReview)
}
