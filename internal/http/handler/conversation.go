package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/common/logger"
	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type ConversationHandler struct {
	conversationService service.ConversationService
}

func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

func (h *ConversationHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	list, err := h.conversationService.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "listing conversations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": dto.ToConversationSummaries(list)})
}

func (h *ConversationHandler) Start(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	conv, err := h.conversationService.Start(c.Request.Context(), p, service.StartConversationInput{
		CounterpartID: req.CounterpartID,
		JobID:         req.JobID,
		Message:       req.Message,
	})
	if err != nil {
		respondError(c, err, "starting conversation")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversationResponse(conv))
}

func (h *ConversationHandler) UnreadCount(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	n, err := h.conversationService.UnreadCount(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "counting unread messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

func (h *ConversationHandler) Open(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{ConversationID: logger.Ptr(conversationID)})

	thread, err := h.conversationService.Open(ctx, p, conversationID)
	if err != nil {
		respondError(c, err, "opening conversation")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversationThreadResponse(thread))
}

func (h *ConversationHandler) Send(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{ConversationID: logger.Ptr(conversationID)})

	msg, err := h.conversationService.Send(ctx, p, conversationID, req.Content)
	if err != nil {
		respondError(c, err, "sending message")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}
