package router

import (
	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/handler"
)

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.GET("", h.List)
	rg.GET("/stream", h.Stream)
	rg.POST("/read-all", h.MarkAllRead)
	rg.POST("/:id/read", h.MarkRead)
}

func ConversationRouter(rg *gin.RouterGroup, h *handler.ConversationHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Start)
	rg.GET("/unread-count", h.UnreadCount)
	rg.GET("/:id", h.Open)
	rg.POST("/:id/messages", h.Send)
}
