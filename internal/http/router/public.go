package router

import (
	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
)

func PublicRouter(rg *gin.RouterGroup, jobs *handler.JobHandler, companies *handler.CompanyHandler) {
	rg.GET("/jobs", jobs.List)
	rg.GET("/jobs/:id", jobs.Get)
	rg.GET("/companies/:slug", companies.Public)
}
