package router

import (
	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
)

type SeekerHandlers struct {
	Profile    *handler.ProfileHandler
	Applicants *handler.ApplicantHandler
	Interviews *handler.InterviewHandler
	Alerts     *handler.JobAlertHandler
	SavedJobs  *handler.SavedJobHandler
	Dashboard  *handler.DashboardHandler
}

// SeekerRouter mounts the job seeker's own resources under /me.
func SeekerRouter(rg *gin.RouterGroup, h SeekerHandlers) {
	rg.GET("/profile", h.Profile.Get)
	rg.PATCH("/profile", h.Profile.Update)

	rg.GET("/applications", h.Applicants.ListMine)
	rg.GET("/interviews", h.Interviews.ListMine)

	rg.GET("/alerts", h.Alerts.List)
	rg.POST("/alerts", h.Alerts.Create)
	rg.PATCH("/alerts/:id", h.Alerts.Update)
	rg.DELETE("/alerts/:id", h.Alerts.Delete)

	rg.GET("/saved-jobs", h.SavedJobs.List)
	rg.POST("/saved-jobs", h.SavedJobs.Save)
	rg.DELETE("/saved-jobs/:jobId", h.SavedJobs.Unsave)

	rg.GET("/dashboard", h.Dashboard.Seeker)
}
