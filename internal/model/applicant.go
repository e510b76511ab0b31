package model

import "time"

type ApplicantStatus string

const (
	ApplicantStatusNew       ApplicantStatus = "new"
	ApplicantStatusReviewing ApplicantStatus = "reviewing"
	ApplicantStatusInterview ApplicantStatus = "interview"
	ApplicantStatusOffer     ApplicantStatus = "offer"
	ApplicantStatusRejected  ApplicantStatus = "rejected"
)

func (s ApplicantStatus) Valid() bool {
	switch s {
	case ApplicantStatusNew, ApplicantStatusReviewing, ApplicantStatusInterview, ApplicantStatusOffer, ApplicantStatusRejected:
		return true
	}
	return false
}

// DefaultApplicantSource is stored when an application does not say where it came from.
const DefaultApplicantSource = "direct"

type Applicant struct {
	ID          int64           `json:"id"`
	JobID       int64           `json:"job_id"`
	UserID      int64           `json:"user_id"`
	Status      ApplicantStatus `json:"status"`
	Source      string          `json:"source"`
	CoverLetter *string         `json:"cover_letter,omitempty"`
	ResumeURL   *string         `json:"resume_url,omitempty"`
	AppliedAt   time.Time       `json:"applied_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Joined columns; which are set depends on the listing.
	JobTitle    string    `json:"job_title,omitempty"`
	JobStatus   JobStatus `json:"job_status,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	CompanySlug string    `json:"company_slug,omitempty"`
}

type ApplicantFilter struct {
	JobID  *int64
	Status *ApplicantStatus
}

type ApplicantCounts struct {
	Total  int64
	New    int64
	Offers int64
}
