package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type SavedJobHandler struct {
	savedJobService service.SavedJobService
}

func NewSavedJobHandler(savedJobService service.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{savedJobService: savedJobService}
}

func (h *SavedJobHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.List(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "listing saved jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_jobs": dto.ToSavedJobResponses(saved)})
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.savedJobService.Save(c.Request.Context(), p.ID, req.JobID); err != nil {
		respondError(c, err, "saving job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	if err := h.savedJobService.Unsave(c.Request.Context(), p.ID, jobID); err != nil {
		respondError(c, err, "removing saved job")
		return
	}
	c.Status(http.StatusNoContent)
}
