package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/queue"
	"hirely.app/api/internal/service"
)

// scriptedStream replays reads in order and cancels the request once it runs out.
type scriptedStream struct {
	reads  []func() ([]queue.Event, string, error)
	lastID []string
	cancel context.CancelFunc
}

func (s *scriptedStream) Read(ctx context.Context, _ model.Role, _ int64, lastID string) ([]queue.Event, string, error) {
	s.lastID = append(s.lastID, lastID)
	if len(s.reads) == 0 {
		s.cancel()
		return nil, lastID, ctx.Err()
	}
	next := s.reads[0]
	s.reads = s.reads[1:]
	return next()
}

var _ = Describe("NotificationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNotificationService
	)

	BeforeEach(func() {
		router = newRouter()
		svc = &mockNotificationService{}
	})

	mount := func(stream handler.NotificationStream) {
		h := handler.NewNotificationHandler(svc, stream)
		rg := router.Group("/notifications", as(userPrincipal))
		rg.GET("", h.List)
		rg.POST("/read-all", h.MarkAllRead)
		rg.POST("/:id/read", h.MarkRead)
		rg.GET("/stream", h.Stream)
	}

	It("lists unread notifications", func() {
		mount(nil)
		svc.listFn = func(_ context.Context, _ model.Principal, unreadOnly bool, limit int32) ([]model.Notification, error) {
			Expect(unreadOnly).To(BeTrue())
			Expect(limit).To(Equal(int32(10)))
			return []model.Notification{{ID: 1, Type: model.NotificationMessage, Title: "New message"}}, nil
		}

		w := perform(router, http.MethodGet, "/notifications?unread=true&limit=10", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["notifications"]).To(HaveLen(1))
	})

	It("returns 404 when marking someone else's notification", func() {
		mount(nil)
		svc.markReadFn = func(context.Context, model.Principal, int64) error {
			return service.ErrNotFound
		}

		w := perform(router, http.MethodPost, "/notifications/77/read", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("reports how many were marked read", func() {
		mount(nil)
		svc.markAllReadFn = func(context.Context, model.Principal) (int64, error) {
			return 4, nil
		}

		w := perform(router, http.MethodPost, "/notifications/read-all", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["updated"]).To(BeEquivalentTo(4))
	})

	Describe("Stream", func() {
		It("returns 503 without a stream backend", func() {
			mount(nil)

			w := perform(router, http.MethodGet, "/notifications/stream", nil)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})

		It("relays events as SSE and resumes from the last id", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			stream := &scriptedStream{cancel: cancel}
			stream.reads = []func() ([]queue.Event, string, error){
				func() ([]queue.Event, string, error) {
					return nil, "5-0", nil
				},
				func() ([]queue.Event, string, error) {
					return []queue.Event{{
						ID: "6-0",
						Notification: model.Notification{
							ID: 11, Type: model.NotificationInterview, Title: "Interview scheduled", CreatedAt: time.Now(),
						},
					}}, "6-0", nil
				},
			}
			mount(stream)

			req := httptest.NewRequest(http.MethodGet, "/notifications/stream?last_id=5-0", nil).WithContext(ctx)
			w := serve(router, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
			body := w.Body.String()
			Expect(body).To(ContainSubstring("event: ping\ndata: ready\n\n"))
			Expect(body).To(ContainSubstring("id: 6-0\nevent: notification\n"))
			Expect(body).To(ContainSubstring(`"title":"Interview scheduled"`))
			Expect(stream.lastID).To(Equal([]string{"5-0", "5-0", "6-0"}))
		})

		It("starts at the newest entry when no id is given", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			stream := &scriptedStream{cancel: cancel}
			mount(stream)

			req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
			serve(router, req)

			Expect(stream.lastID).To(Equal([]string{queue.LatestID}))
		})
	})
})
