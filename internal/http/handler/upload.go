package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/service"
)

// multipartOverhead leaves room for boundaries and the kind field.
const multipartOverhead = 64 << 10

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file: must be at most 5 MiB", "code": "validation", "field": "file"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "code": "validation", "field": "file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "opening upload")
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), p, service.UploadKind(c.PostForm("kind")), file)
	if err != nil {
		respondError(c, err, "uploading file")
		return
	}

	c.JSON(http.StatusOK, result)
}
