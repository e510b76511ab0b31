package model

import "time"

type AlertFrequency string

const (
	AlertDaily  AlertFrequency = "daily"
	AlertWeekly AlertFrequency = "weekly"
)

func (f AlertFrequency) Valid() bool {
	return f == AlertDaily || f == AlertWeekly
}

type JobAlert struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Keywords       string          `json:"keywords"`
	Location       *string         `json:"location,omitempty"`
	EmploymentType *EmploymentType `json:"employment_type,omitempty"`
	Frequency      AlertFrequency  `json:"frequency"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SavedJob struct {
	Job     Job       `json:"job"`
	SavedAt time.Time `json:"saved_at"`
}
