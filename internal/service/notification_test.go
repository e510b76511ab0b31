package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/common/id"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/store"
)

type fakePublisher struct {
	published []*model.Notification
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, n *model.Notification) error {
	f.published = append(f.published, n)
	return f.err
}

var _ = Describe("NotificationService", func() {
	var (
		ctx        context.Context
		notifStore *mockNotificationStore
		publisher  *fakePublisher
		svc        service.NotificationService
		seeker     = model.Principal{ID: 9, Role: model.RoleUser}
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())
		notifStore = &mockNotificationStore{}
		publisher = &fakePublisher{}
		svc = service.NewNotificationService(notifStore, publisher)
	})

	It("stores then publishes", func() {
		userID := int64(9)
		n := &model.Notification{UserID: &userID, Type: model.NotificationMessage, Title: "hi"}
		var stored bool
		notifStore.createFn = func(context.Context, *model.Notification) error {
			stored = true
			return nil
		}
		svc.Notify(ctx, n)
		Expect(stored).To(BeTrue())
		Expect(n.ID).NotTo(BeZero())
		Expect(publisher.published).To(ConsistOf(n))
	})

	It("skips publishing when the insert fails", func() {
		notifStore.createFn = func(context.Context, *model.Notification) error {
			return errors.New("db down")
		}
		svc.Notify(ctx, &model.Notification{Type: "x"})
		Expect(publisher.published).To(BeEmpty())
	})

	It("swallows publish errors", func() {
		publisher.err = errors.New("redis down")
		Expect(func() { svc.Notify(ctx, &model.Notification{Type: "x"}) }).NotTo(Panic())
	})

	It("works without a publisher", func() {
		svc = service.NewNotificationService(notifStore, nil)
		Expect(func() { svc.Notify(ctx, &model.Notification{Type: "x"}) }).NotTo(Panic())
	})

	It("clamps the list limit", func() {
		notifStore.listFn = func(_ context.Context, role model.Role, ownerID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
			Expect(role).To(Equal(model.RoleUser))
			Expect(ownerID).To(Equal(int64(9)))
			Expect(unreadOnly).To(BeTrue())
			Expect(limit).To(Equal(int32(100)))
			return nil, nil
		}
		_, err := svc.List(ctx, seeker, true, 500)
		Expect(err).NotTo(HaveOccurred())
	})

	It("maps a foreign notification to NotFound", func() {
		notifStore.markReadFn = func(context.Context, int64, model.Role, int64) error {
			return store.ErrNotFound
		}
		Expect(svc.MarkRead(ctx, seeker, 1)).To(MatchError(service.ErrNotFound))
	})
})
