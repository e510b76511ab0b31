package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/middleware"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

// respondError maps service errors onto statuses. Anything unrecognised is a
// 500 with a generic body; op is only logged.
func respondError(c *gin.Context, err error, op string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		body := gin.H{"error": verr.Error(), "code": "validation"}
		if verr.Field != "" {
			body["field"] = verr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation"})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "code": "unauthenticated"})
	case errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found", "code": "account_not_found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "code": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists", "code": "conflict"})
	case errors.Is(err, service.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service not configured", "code": "not_configured"})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error(), "code": "validation"})
}

// currentPrincipal reads what RequireAuth stored. Routes are always mounted
// behind it, so a miss is answered like a missing session.
func currentPrincipal(c *gin.Context) (model.Principal, bool) {
	p := middleware.GetPrincipal(c.Request.Context())
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "code": "unauthenticated"})
		return model.Principal{}, false
	}
	return *p, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name, "code": "validation", "field": name})
		return 0, false
	}
	return v, true
}
