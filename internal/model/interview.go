package model

import "time"

type InterviewType string

const (
	InterviewVideo  InterviewType = "video"
	InterviewPhone  InterviewType = "phone"
	InterviewOnsite InterviewType = "onsite"
)

func (t InterviewType) Valid() bool {
	return t == InterviewVideo || t == InterviewPhone || t == InterviewOnsite
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

func (s InterviewStatus) Valid() bool {
	return s == InterviewScheduled || s == InterviewCompleted || s == InterviewCancelled
}

type Interview struct {
	ID              int64           `json:"id"`
	ApplicantID     int64           `json:"applicant_id"`
	CompanyID       int64           `json:"company_id"`
	JobID           int64           `json:"job_id"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	DurationMinutes int32           `json:"duration_minutes"`
	Type            InterviewType   `json:"type"`
	Location        *string         `json:"location,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	Status          InterviewStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	JobTitle    string `json:"job_title,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}
