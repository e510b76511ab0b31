package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type JobAlertHandler struct {
	alertService service.JobAlertService
}

func NewJobAlertHandler(alertService service.JobAlertService) *JobAlertHandler {
	return &JobAlertHandler{alertService: alertService}
}

func (h *JobAlertHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	alerts, err := h.alertService.List(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "listing job alerts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": dto.ToJobAlertResponses(alerts)})
}

func (h *JobAlertHandler) Create(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateJobAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	alert, err := h.alertService.Create(c.Request.Context(), p.ID, service.JobAlertInput{
		Keywords:       req.Keywords,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Frequency:      req.Frequency,
	})
	if err != nil {
		respondError(c, err, "creating job alert")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJobAlertResponse(alert))
}

func (h *JobAlertHandler) Update(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	alert, err := h.alertService.Update(c.Request.Context(), p.ID, alertID, service.JobAlertPatch{
		Keywords:       req.Keywords,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Frequency:      req.Frequency,
		Active:         req.Active,
	})
	if err != nil {
		respondError(c, err, "updating job alert")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobAlertResponse(alert))
}

func (h *JobAlertHandler) Delete(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	alertID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.alertService.Delete(c.Request.Context(), p.ID, alertID); err != nil {
		respondError(c, err, "deleting job alert")
		return
	}
	c.Status(http.StatusNoContent)
}
