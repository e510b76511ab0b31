package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
	now           func() time.Time
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService, now: time.Now}
}

func (h *ExportHandler) Export(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	export, err := h.exportService.Export(c.Request.Context(), p.ID, service.ExportKind(c.Param("type")), h.now())
	if err != nil {
		respondError(c, err, "exporting csv")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Body)
}
