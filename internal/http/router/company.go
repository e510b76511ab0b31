package router

import (
	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
)

type CompanyHandlers struct {
	Profile    *handler.CompanyHandler
	Jobs       *handler.JobHandler
	Applicants *handler.ApplicantHandler
	Interviews *handler.InterviewHandler
	Dashboard  *handler.DashboardHandler
	Export     *handler.ExportHandler
}

func CompanyRouter(rg *gin.RouterGroup, h CompanyHandlers) {
	rg.GET("/profile", h.Profile.GetProfile)
	rg.PATCH("/profile", h.Profile.UpdateProfile)

	rg.GET("/jobs", h.Jobs.ListMine)
	rg.POST("/jobs", h.Jobs.Create)
	rg.PATCH("/jobs/:id", h.Jobs.Update)
	rg.DELETE("/jobs/:id", h.Jobs.Delete)

	rg.GET("/applicants", h.Applicants.List)
	rg.GET("/applicants/:id", h.Applicants.Get)
	rg.PATCH("/applicants/:id", h.Applicants.UpdateStatus)

	rg.GET("/interviews", h.Interviews.List)
	rg.POST("/interviews", h.Interviews.Create)
	rg.PATCH("/interviews/:id", h.Interviews.Update)
	rg.DELETE("/interviews/:id", h.Interviews.Delete)
	rg.POST("/interviews/:id/cancel", h.Interviews.Cancel)

	rg.GET("/dashboard/stats", h.Dashboard.Stats)
	rg.GET("/dashboard/chart", h.Dashboard.Chart)
	rg.GET("/dashboard/sources", h.Dashboard.Sources)
	rg.GET("/activities", h.Dashboard.Activity)

	rg.GET("/export/:type", h.Export.Export)
}
