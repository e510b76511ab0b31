package model

import "time"

const (
	NotificationNewApplicant    = "new_applicant"
	NotificationApplicantStatus = "application_status"
	NotificationInterview       = "interview_scheduled"
	NotificationMessage         = "new_message"
)

// Notification is owned by exactly one of CompanyID or UserID.
type Notification struct {
	ID        int64     `json:"id"`
	CompanyID *int64    `json:"company_id,omitempty"`
	UserID    *int64    `json:"user_id,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Recipient is the principal a notification is addressed to.
func (n *Notification) Recipient() (Role, int64) {
	if n.CompanyID != nil {
		return RoleCompany, *n.CompanyID
	}
	if n.UserID != nil {
		return RoleUser, *n.UserID
	}
	return "", 0
}

const (
	ActivityJobCreated   = "job_created"
	ActivityJobUpdated   = "job_updated"
	ActivityApplication  = "application"
	ActivityInterview    = "interview_scheduled"
	ActivityStatusChange = "applicant_status"
)

// Activity is an append-only feed row.
type Activity struct {
	ID          int64     `json:"id"`
	CompanyID   *int64    `json:"company_id,omitempty"`
	UserID      *int64    `json:"user_id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	JobID       *int64    `json:"job_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
