package service

import (
	"context"
	"log/slog"

	"hirely.app/api/common/id"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

// NotificationPublisher pushes a stored notification to live subscribers.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *model.Notification) error
}

type NotificationService interface {
	List(ctx context.Context, p model.Principal, unreadOnly bool, limit int32) ([]model.Notification, error)
	MarkRead(ctx context.Context, p model.Principal, notificationID int64) error
	MarkAllRead(ctx context.Context, p model.Principal) (int64, error)
	// Notify stores n and publishes it. Failures are logged and swallowed.
	Notify(ctx context.Context, n *model.Notification)
}

type notificationService struct {
	notifications store.NotificationStore
	publisher     NotificationPublisher
}

// NewNotificationService builds the service. publisher may be nil when no
// stream backend is configured.
func NewNotificationService(notifications store.NotificationStore, publisher NotificationPublisher) NotificationService {
	return &notificationService{notifications: notifications, publisher: publisher}
}

func (s *notificationService) List(ctx context.Context, p model.Principal, unreadOnly bool, limit int32) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	items, err := s.notifications.List(ctx, p.Role, p.ID, unreadOnly, limit)
	if err != nil {
		return nil, storeErr(err, "listing notifications")
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, p model.Principal, notificationID int64) error {
	return storeErr(s.notifications.MarkRead(ctx, notificationID, p.Role, p.ID), "marking notification read")
}

func (s *notificationService) MarkAllRead(ctx context.Context, p model.Principal) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, p.Role, p.ID)
	if err != nil {
		return 0, storeErr(err, "marking notifications read")
	}
	return n, nil
}

func (s *notificationService) Notify(ctx context.Context, n *model.Notification) {
	if n.ID == 0 {
		n.ID = id.New()
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		slog.WarnContext(ctx, "failed to create notification",
			"error", err,
			"type", n.Type,
		)
		return
	}
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, n); err != nil {
		slog.WarnContext(ctx, "failed to publish notification",
			"error", err,
			"notification_id", n.ID,
		)
	}
}

func notifyCompany(companyID int64, typ, title, body, link string) *model.Notification {
	return &model.Notification{
		CompanyID: &companyID,
		Type:      typ,
		Title:     title,
		Body:      body,
		Link:      &link,
	}
}

func notifyUser(userID int64, typ, title, body, link string) *model.Notification {
	return &model.Notification{
		UserID: &userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		Link:   &link,
	}
}

// recordActivity appends to the company feed. It never fails the caller.
func recordActivity(ctx context.Context, activities store.ActivityStore, companyID int64, typ, description string, jobID *int64) {
	a := &model.Activity{
		ID:          id.New(),
		CompanyID:   &companyID,
		Type:        typ,
		Description: description,
		JobID:       jobID,
	}
	if err := activities.Create(ctx, a); err != nil {
		slog.WarnContext(ctx, "failed to record activity",
			"error", err,
			"type", typ,
		)
	}
}
