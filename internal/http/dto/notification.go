package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type ListNotificationsQuery struct {
	Unread bool  `form:"unread"`
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type NotificationResponse struct {
	ID        int64     `json:"id,string"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func ToNotificationResponses(list []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, ToNotificationResponse(&list[i]))
	}
	return out
}

type ActivityResponse struct {
	ID          int64     `json:"id,string"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	JobID       *int64    `json:"job_id,omitempty,string"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToActivityResponses(list []model.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ActivityResponse{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			JobID:       a.JobID,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}
