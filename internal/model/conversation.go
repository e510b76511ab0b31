package model

import "time"

// Conversation is the single thread between one company and one user.
type Conversation struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	UserID    int64     `json:"user_id"`
	JobID     *int64    `json:"job_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant reports whether p is one side of the conversation.
func (c *Conversation) Participant(p Principal) bool {
	switch p.Role {
	case RoleCompany:
		return c.CompanyID == p.ID
	case RoleUser:
		return c.UserID == p.ID
	}
	return false
}

type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderType     Role      `json:"sender_type"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is one row of the inbox.
type ConversationSummary struct {
	Conversation
	CounterpartName      string     `json:"counterpart_name"`
	CounterpartAvatarURL *string    `json:"counterpart_avatar_url,omitempty"`
	LastMessage          *string    `json:"last_message,omitempty"`
	LastSenderType       *Role      `json:"last_sender_type,omitempty"`
	LastMessageAt        *time.Time `json:"last_message_at,omitempty"`
	UnreadCount          int64      `json:"unread_count"`
}

// ConversationThread is an opened conversation with every message, oldest first.
type ConversationThread struct {
	Conversation Conversation `json:"conversation"`
	Messages     []Message    `json:"messages"`
}
