package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"hirely.app/api/common/id"
	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const maxMessageLen = 5000

// StartConversationInput names the other party. A company passes a user id,
// a user passes a company id.
type StartConversationInput struct {
	CounterpartID int64
	JobID         *int64
	Message       *string
}

type ConversationService interface {
	// Start returns the one conversation between the principal and the
	// counterpart, creating it on first use.
	Start(ctx context.Context, p model.Principal, in StartConversationInput) (*model.Conversation, error)
	List(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error)
	// Open marks the counterpart's messages read and returns the full thread.
	Open(ctx context.Context, p model.Principal, conversationID int64) (*model.ConversationThread, error)
	Send(ctx context.Context, p model.Principal, conversationID int64, content string) (*model.Message, error)
	UnreadCount(ctx context.Context, p model.Principal) (int64, error)
}

type conversationService struct {
	conversations store.ConversationStore
	messages      store.MessageStore
	companies     store.CompanyStore
	users         store.UserStore
	jobs          store.JobStore
	notifications NotificationService
	txRunner      TxRunner
}

func NewConversationService(
	conversations store.ConversationStore,
	messages store.MessageStore,
	companies store.CompanyStore,
	users store.UserStore,
	jobs store.JobStore,
	notifications NotificationService,
	txRunner TxRunner,
) ConversationService {
	return &conversationService{
		conversations: conversations,
		messages:      messages,
		companies:     companies,
		users:         users,
		jobs:          jobs,
		notifications: notifications,
		txRunner:      txRunner,
	}
}

func (s *conversationService) Start(ctx context.Context, p model.Principal, in StartConversationInput) (*model.Conversation, error) {
	conv := &model.Conversation{ID: id.New(), JobID: in.JobID}

	switch p.Role {
	case model.RoleCompany:
		if _, err := s.users.GetByID(ctx, in.CounterpartID); err != nil {
			return nil, storeErr(err, "getting user")
		}
		conv.CompanyID, conv.UserID = p.ID, in.CounterpartID
	case model.RoleUser:
		if _, err := s.companies.GetByID(ctx, in.CounterpartID); err != nil {
			return nil, storeErr(err, "getting company")
		}
		conv.CompanyID, conv.UserID = in.CounterpartID, p.ID
	default:
		return nil, ErrForbidden
	}

	if in.JobID != nil {
		if _, err := s.jobs.GetForCompany(ctx, *in.JobID, conv.CompanyID); err != nil {
			return nil, storeErr(err, "getting job")
		}
	}

	if err := s.conversations.Upsert(ctx, conv); err != nil {
		return nil, storeErr(err, "starting conversation")
	}

	if in.Message != nil && strings.TrimSpace(*in.Message) != "" {
		if _, err := s.Send(ctx, p, conv.ID, *in.Message); err != nil {
			return nil, err
		}
	}
	return conv, nil
}

func (s *conversationService) List(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error) {
	list, err := s.conversations.ListForPrincipal(ctx, p)
	if err != nil {
		return nil, storeErr(err, "listing conversations")
	}
	return list, nil
}

func (s *conversationService) Open(ctx context.Context, p model.Principal, conversationID int64) (*model.ConversationThread, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: logger.Ptr(conversationID)})

	conv, err := s.conversations.GetForPrincipal(ctx, conversationID, p)
	if err != nil {
		return nil, storeErr(err, "getting conversation")
	}

	if _, err := s.messages.MarkRead(ctx, conv.ID, p.Role.Other()); err != nil {
		return nil, fmt.Errorf("marking messages read: %w", err)
	}
	msgs, err := s.messages.ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return &model.ConversationThread{Conversation: *conv, Messages: msgs}, nil
}

func (s *conversationService) Send(ctx context.Context, p model.Principal, conversationID int64, content string) (*model.Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: logger.Ptr(conversationID)})

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid("content", "must not be empty")
	}
	if utf8.RuneCountInString(content) > maxMessageLen {
		return nil, invalid("content", fmt.Sprintf("must be at most %d characters", maxMessageLen))
	}

	conv, err := s.conversations.GetForPrincipal(ctx, conversationID, p)
	if err != nil {
		return nil, storeErr(err, "getting conversation")
	}

	msg := &model.Message{
		ID:             id.New(),
		ConversationID: conv.ID,
		SenderType:     p.Role,
		Content:        content,
	}
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Messages().Create(ctx, msg); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		if err := stores.Conversations().Touch(ctx, conv.ID); err != nil {
			return fmt.Errorf("touching conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, messageNotification(p, conv, content))
	slog.DebugContext(ctx, "message sent", "message_id", msg.ID)
	return msg, nil
}

func (s *conversationService) UnreadCount(ctx context.Context, p model.Principal) (int64, error) {
	n, err := s.conversations.CountUnread(ctx, p)
	if err != nil {
		return 0, storeErr(err, "counting unread messages")
	}
	return n, nil
}

func messageNotification(sender model.Principal, conv *model.Conversation, content string) *model.Notification {
	from := sender.Name
	if from == "" {
		from = "Someone"
	}
	link := fmt.Sprintf("/messages/%d", conv.ID)
	title := "New message from " + from
	body := preview(content, 140)

	if sender.IsCompany() {
		return notifyUser(conv.UserID, model.NotificationMessage, title, body, link)
	}
	return notifyCompany(conv.CompanyID, model.NotificationMessage, title, body, link)
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
