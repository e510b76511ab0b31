package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/http/middleware"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

type RouterConfig struct {
	SessionTTL   time.Duration
	SecureCookie bool
	// Stream is nil when Redis is not configured.
	Stream handler.NotificationStream
	// Ready backs GET /health. Nil means always ready.
	Ready func(ctx context.Context) error
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		if cfg.Ready != nil {
			if err := cfg.Ready(c.Request.Context()); err != nil {
				slog.WarnContext(c.Request.Context(), "health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(services.Auth(), cfg.SecureCookie)

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.SessionTTL, cfg.SecureCookie)
	AuthRouter(router.Group("/auth"), requireAuth, authHandler)

	jobHandler := handler.NewJobHandler(services.Jobs())
	applicantHandler := handler.NewApplicantHandler(services.Applicants())
	interviewHandler := handler.NewInterviewHandler(services.Interviews())
	companyHandler := handler.NewCompanyHandler(services.Companies())
	dashboardHandler := handler.NewDashboardHandler(services.Dashboard())

	v1 := router.Group("/api/v1")
	{
		PublicRouter(v1, jobHandler, companyHandler)

		v1.POST("/jobs/:id/apply", requireAuth, middleware.RequireRole(model.RoleUser), applicantHandler.Apply)

		shared := v1.Group("", requireAuth, middleware.RequireRole())
		NotificationRouter(shared.Group("/notifications"), handler.NewNotificationHandler(services.Notifications(), cfg.Stream))
		ConversationRouter(shared.Group("/conversations"), handler.NewConversationHandler(services.Conversations()))
		shared.POST("/uploads", handler.NewUploadHandler(services.Uploads()).Upload)

		CompanyRouter(v1.Group("/company", requireAuth, middleware.RequireRole(model.RoleCompany)), CompanyHandlers{
			Profile:    companyHandler,
			Jobs:       jobHandler,
			Applicants: applicantHandler,
			Interviews: interviewHandler,
			Dashboard:  dashboardHandler,
			Export:     handler.NewExportHandler(services.Export()),
		})

		SeekerRouter(v1.Group("/me", requireAuth, middleware.RequireRole(model.RoleUser)), SeekerHandlers{
			Profile:    handler.NewProfileHandler(services.Profiles()),
			Applicants: applicantHandler,
			Interviews: interviewHandler,
			Alerts:     handler.NewJobAlertHandler(services.JobAlerts()),
			SavedJobs:  handler.NewSavedJobHandler(services.SavedJobs()),
			Dashboard:  dashboardHandler,
		})
	}
}
