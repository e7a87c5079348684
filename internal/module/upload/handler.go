package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// UploadHandler serves the image upload endpoint.
type UploadHandler struct {
	service Service
}

// NewHandler creates a new UploadHandler.
func NewHandler(service Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload accepts a multipart form with a "file" part and a "category" field
// and responds with the stored file's public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "missing file part", err))
		return
	}
	category := c.PostForm("category")

	f, err := fileHeader.Open()
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "unreadable file part", err))
		return
	}
	defer f.Close()

	resp, err := h.service.SaveImage(
		c.Request.Context(),
		category,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, resp)
}
