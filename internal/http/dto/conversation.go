package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

// StartConversationRequest names the counterpart by its profile id: a user id
// when a company starts the thread, a company id when a user does.
type StartConversationRequest struct {
	CounterpartID int64   `json:"counterpart_id,string" binding:"required"`
	JobID         *int64  `json:"job_id,omitempty,string"`
	Message       *string `json:"message,omitempty"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type ConversationResponse struct {
	ID        int64     `json:"id,string"`
	CompanyID int64     `json:"company_id,string"`
	UserID    int64     `json:"user_id,string"`
	JobID     *int64    `json:"job_id,omitempty,string"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToConversationResponse(c *model.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		UserID:    c.UserID,
		JobID:     c.JobID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ConversationSummaryResponse struct {
	ConversationResponse
	CounterpartName      string      `json:"counterpart_name"`
	CounterpartAvatarURL *string     `json:"counterpart_avatar_url,omitempty"`
	LastMessage          *string     `json:"last_message,omitempty"`
	LastSenderType       *model.Role `json:"last_sender_type,omitempty"`
	LastMessageAt        *time.Time  `json:"last_message_at,omitempty"`
	UnreadCount          int64       `json:"unread_count"`
}

func ToConversationSummaries(list []model.ConversationSummary) []ConversationSummaryResponse {
	out := make([]ConversationSummaryResponse, 0, len(list))
	for i := range list {
		s := &list[i]
		out = append(out, ConversationSummaryResponse{
			ConversationResponse: ToConversationResponse(&s.Conversation),
			CounterpartName:      s.CounterpartName,
			CounterpartAvatarURL: s.CounterpartAvatarURL,
			LastMessage:          s.LastMessage,
			LastSenderType:       s.LastSenderType,
			LastMessageAt:        s.LastMessageAt,
			UnreadCount:          s.UnreadCount,
		})
	}
	return out
}

type MessageResponse struct {
	ID             int64      `json:"id,string"`
	ConversationID int64      `json:"conversation_id,string"`
	SenderType     model.Role `json:"sender_type"`
	Content        string     `json:"content"`
	Read           bool       `json:"read"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderType:     m.SenderType,
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

type ConversationThreadResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Messages     []MessageResponse    `json:"messages"`
}

func ToConversationThreadResponse(t *model.ConversationThread) ConversationThreadResponse {
	msgs := make([]MessageResponse, 0, len(t.Messages))
	for i := range t.Messages {
		msgs = append(msgs, ToMessageResponse(&t.Messages[i]))
	}
	return ConversationThreadResponse{
		Conversation: ToConversationResponse(&t.Conversation),
		Messages:     msgs,
	}
}
