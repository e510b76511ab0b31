package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderType:     string(msg.SenderType),
		Content:        msg.Content,
	})
	if err != nil {
		return mapErr(err)
	}
	*msg = *toMessageModel(row)
	return nil
}

// ListByConversation returns messages oldest first.
func (s *messageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	rows, err := s.queries.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toMessageModel(row))
	}
	return out, nil
}

// MarkRead flags unread messages sent by sender. Pass the reader's counterpart.
func (s *messageStore) MarkRead(ctx context.Context, conversationID int64, sender model.Role) (int64, error) {
	return s.queries.MarkMessagesRead(ctx, sqlc.MarkMessagesReadParams{
		ConversationID: conversationID,
		SenderType:     string(sender),
	})
}

func toMessageModel(row sqlc.Message) *model.Message {
	return &model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderType:     model.Role(row.SenderType),
		Content:        row.Content,
		Read:           row.Read,
		CreatedAt:      row.CreatedAt.Time,
	}
}
