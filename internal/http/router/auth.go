package router

import (
	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
)

// AuthRouter mounts session routes. /me and /role accept a principal that has
// not picked a role yet.
func AuthRouter(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handler.AuthHandler) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/sso/url", h.SSOURL)
	rg.POST("/sso/exchange", h.SSOExchange)

	authed := rg.Group("", requireAuth)
	{
		authed.GET("/me", h.Me)
		authed.POST("/role", h.SelectRole)
	}
}
