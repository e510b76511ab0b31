package model

import "time"

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship, EmploymentTemporary:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed || s == JobStatusDraft
}

type Job struct {
	ID             int64          `json:"id"`
	CompanyID      int64          `json:"company_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Location       *string        `json:"location,omitempty"`
	EmploymentType EmploymentType `json:"employment_type"`
	Remote         bool           `json:"remote"`
	SalaryMin      *int32         `json:"salary_min,omitempty"`
	SalaryMax      *int32         `json:"salary_max,omitempty"`
	Status         JobStatus      `json:"status"`
	Applicants     int32          `json:"applicants"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Set by listings that join the owning company.
	CompanyName    string  `json:"company_name,omitempty"`
	CompanySlug    string  `json:"company_slug,omitempty"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`
}

type JobFilter struct {
	Query          *string
	Location       *string
	EmploymentType *EmploymentType
	Remote         *bool
	Limit          int32
	Offset         int32
}

type JobCounts struct {
	Total int64
	Open  int64
}
