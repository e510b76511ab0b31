package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type notificationStore struct {
	queries *sqlc.Queries
}

func newNotificationStore(queries *sqlc.Queries) NotificationStore {
	return &notificationStore{queries: queries}
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	row, err := s.queries.CreateNotification(ctx, sqlc.CreateNotificationParams{
		ID:        n.ID,
		CompanyID: n.CompanyID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Link:      n.Link,
	})
	if err != nil {
		return mapErr(err)
	}
	*n = *toNotificationModel(row)
	return nil
}

func (s *notificationStore) List(ctx context.Context, role model.Role, ownerID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
	companyID, userID := owner(role, ownerID)
	rows, err := s.queries.ListNotifications(ctx, sqlc.ListNotificationsParams{
		CompanyID:  companyID,
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toNotificationModel(row))
	}
	return out, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id int64, role model.Role, ownerID int64) error {
	companyID, userID := owner(role, ownerID)
	return affected(s.queries.MarkNotificationRead(ctx, sqlc.MarkNotificationReadParams{
		ID:        id,
		CompanyID: companyID,
		UserID:    userID,
	}))
}

func (s *notificationStore) MarkAllRead(ctx context.Context, role model.Role, ownerID int64) (int64, error) {
	companyID, userID := owner(role, ownerID)
	return s.queries.MarkAllNotificationsRead(ctx, sqlc.MarkAllNotificationsReadParams{
		CompanyID: companyID,
		UserID:    userID,
	})
}

// owner splits a principal into the nullable owner columns. Exactly one is set.
func owner(role model.Role, id int64) (companyID, userID *int64) {
	if role == model.RoleCompany {
		return &id, nil
	}
	return nil, &id
}

func toNotificationModel(row sqlc.Notification) *model.Notification {
	return &model.Notification{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		UserID:    row.UserID,
		Type:      row.Type,
		Title:     row.Title,
		Body:      row.Body,
		Link:      row.Link,
		Read:      row.Read,
		CreatedAt: row.CreatedAt.Time,
	}
}
