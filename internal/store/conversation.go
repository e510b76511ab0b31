package store

import (
	"context"
	"time"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

// Upsert keeps conv.ID only when a new row is inserted; an existing pair
// returns its original id.
func (s *conversationStore) Upsert(ctx context.Context, conv *model.Conversation) error {
	row, err := s.queries.UpsertConversation(ctx, sqlc.UpsertConversationParams{
		ID:        conv.ID,
		CompanyID: conv.CompanyID,
		UserID:    conv.UserID,
		JobID:     conv.JobID,
	})
	if err != nil {
		return mapErr(err)
	}
	*conv = *toConversationModel(row)
	return nil
}

func (s *conversationStore) GetForPrincipal(ctx context.Context, id int64, p model.Principal) (*model.Conversation, error) {
	var (
		row sqlc.Conversation
		err error
	)
	switch p.Role {
	case model.RoleCompany:
		row, err = s.queries.GetConversationForCompany(ctx, sqlc.GetConversationForCompanyParams{ID: id, CompanyID: p.ID})
	case model.RoleUser:
		row, err = s.queries.GetConversationForUser(ctx, sqlc.GetConversationForUserParams{ID: id, UserID: p.ID})
	default:
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, mapErr(err)
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) Touch(ctx context.Context, id int64) error {
	return s.queries.TouchConversation(ctx, id)
}

func (s *conversationStore) ListForPrincipal(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error) {
	switch p.Role {
	case model.RoleCompany:
		rows, err := s.queries.ListConversationsForCompany(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out := make([]model.ConversationSummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, toSummary(
				sqlc.Conversation{ID: r.ID, CompanyID: r.CompanyID, UserID: r.UserID, JobID: r.JobID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
				summaryTail{r.CounterpartName, r.CounterpartAvatarUrl, r.LastMessage, r.LastSenderType, r.LastMessageAt.Time, r.LastMessageAt.Valid, r.UnreadCount},
			))
		}
		return out, nil
	case model.RoleUser:
		rows, err := s.queries.ListConversationsForUser(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out := make([]model.ConversationSummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, toSummary(
				sqlc.Conversation{ID: r.ID, CompanyID: r.CompanyID, UserID: r.UserID, JobID: r.JobID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
				summaryTail{r.CounterpartName, r.CounterpartAvatarUrl, r.LastMessage, r.LastSenderType, r.LastMessageAt.Time, r.LastMessageAt.Valid, r.UnreadCount},
			))
		}
		return out, nil
	}
	return []model.ConversationSummary{}, nil
}

func (s *conversationStore) CountUnread(ctx context.Context, p model.Principal) (int64, error) {
	switch p.Role {
	case model.RoleCompany:
		return s.queries.CountUnreadForCompany(ctx, p.ID)
	case model.RoleUser:
		return s.queries.CountUnreadForUser(ctx, p.ID)
	}
	return 0, nil
}

// summaryTail carries the inbox columns shared by both list queries.
type summaryTail struct {
	name        string
	avatarURL   *string
	lastMessage *string
	lastSender  *string
	lastAt      time.Time
	hasLast     bool
	unread      int64
}

func toSummary(conv sqlc.Conversation, t summaryTail) model.ConversationSummary {
	s := model.ConversationSummary{
		Conversation:         *toConversationModel(conv),
		CounterpartName:      t.name,
		CounterpartAvatarURL: t.avatarURL,
		LastMessage:          t.lastMessage,
		LastSenderType:       enumPtr[string, model.Role](t.lastSender),
		UnreadCount:          t.unread,
	}
	if t.hasLast {
		at := t.lastAt
		s.LastMessageAt = &at
	}
	return s
}

func toConversationModel(row sqlc.Conversation) *model.Conversation {
	return &model.Conversation{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		UserID:    row.UserID,
		JobID:     row.JobID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
