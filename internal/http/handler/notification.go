package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/queue"
	"hirely.app/api/internal/service"
)

const streamRetryDelay = 2 * time.Second

// NotificationStream tails a principal's live notification stream.
type NotificationStream interface {
	Read(ctx context.Context, role model.Role, ownerID int64, lastID string) ([]queue.Event, string, error)
}

type NotificationHandler struct {
	notificationService service.NotificationService
	stream              NotificationStream
	retryDelay          time.Duration
}

// NewNotificationHandler accepts a nil stream; Stream then answers 503.
func NewNotificationHandler(notificationService service.NotificationService, stream NotificationStream) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		stream:              stream,
		retryDelay:          streamRetryDelay,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var q dto.ListNotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.notificationService.List(c.Request.Context(), p, q.Unread, q.Limit)
	if err != nil {
		respondError(c, err, "listing notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dto.ToNotificationResponses(list)})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), p, notificationID); err != nil {
		respondError(c, err, "marking notification read")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	n, err := h.notificationService.MarkAllRead(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "marking notifications read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

// Stream relays the principal's notification stream as server-sent events.
// Clients resume with ?last_id= or the Last-Event-ID header.
func (h *NotificationHandler) Stream(c *gin.Context) {
	if h.stream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notification stream not configured", "code": "not_configured"})
		return
	}
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	lastID := c.Query("last_id")
	if lastID == "" {
		lastID = c.GetHeader("Last-Event-ID")
	}
	if lastID == "" {
		lastID = queue.LatestID
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	// The server write timeout would cut the stream off.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		slog.WarnContext(ctx, "failed to clear write deadline", "error", err)
	}

	setSSEHeaders(c.Writer)
	c.Status(http.StatusOK)
	sseWrite(c.Writer, "", "ping", "ready")
	flusher.Flush()

	for {
		if ctx.Err() != nil {
			return
		}

		events, next, err := h.stream.Read(ctx, p.Role, p.ID, lastID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.WarnContext(ctx, "notification stream read failed", "error", err)
			sseWrite(c.Writer, "", "error", map[string]string{"error": "stream unavailable"})
			flusher.Flush()

			select {
			case <-ctx.Done():
				return
			case <-time.After(h.retryDelay):
			}
			continue
		}
		lastID = next

		if len(events) == 0 {
			sseWrite(c.Writer, "", "ping", time.Now().UTC().Format(time.RFC3339Nano))
		}
		for _, ev := range events {
			sseWrite(c.Writer, ev.ID, "notification", dto.ToNotificationResponse(&ev.Notification))
		}
		flusher.Flush()
	}
}

func setSSEHeaders(w http.ResponseWriter) {
	headers := w.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
}

func sseWrite(w http.ResponseWriter, id, event string, data any) {
	if id != "" {
		_, _ = fmt.Fprintf(w, "id: %s\n", id)
	}
	if event != "" {
		_, _ = fmt.Fprintf(w, "event: %s\n", event)
	}
	for _, line := range strings.Split(marshalPayload(data), "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
}

func marshalPayload(data any) string {
	switch payload := data.(type) {
	case string:
		return payload
	case []byte:
		return string(payload)
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Sprintf("%v", data)
		}
		return string(b)
	}
}
