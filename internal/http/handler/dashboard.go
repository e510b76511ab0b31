package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "loading dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Chart(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	days := service.DefaultChartDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number", "code": "validation", "field": "days"})
			return
		}
		days = n
	}

	buckets, err := h.dashboardService.Chart(c.Request.Context(), p.ID, days)
	if err != nil {
		respondError(c, err, "building applicant chart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "buckets": buckets})
}

func (h *DashboardHandler) Sources(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	sources, err := h.dashboardService.Sources(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "building source breakdown")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sources": sources})
}

func (h *DashboardHandler) Activity(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)

	list, err := h.dashboardService.Activity(c.Request.Context(), p.ID, int32(limit))
	if err != nil {
		respondError(c, err, "listing activity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": dto.ToActivityResponses(list)})
}

// Seeker is the job seeker's dashboard summary.
func (h *DashboardHandler) Seeker(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.SeekerDashboard(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "loading seeker dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
