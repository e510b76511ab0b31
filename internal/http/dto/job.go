package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type CreateJobRequest struct {
	Title          string               `json:"title" binding:"required,min=1,max=200"`
	Description    string               `json:"description" binding:"max=20000"`
	Location       *string              `json:"location,omitempty" binding:"omitempty,max=255"`
	EmploymentType model.EmploymentType `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	Remote         bool                 `json:"remote"`
	SalaryMin      *int32               `json:"salary_min,omitempty" binding:"omitempty,min=0"`
	SalaryMax      *int32               `json:"salary_max,omitempty" binding:"omitempty,min=0"`
	Status         model.JobStatus      `json:"status,omitempty" binding:"omitempty,oneof=open closed draft"`
}

type UpdateJobRequest struct {
	Title          *string               `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description    *string               `json:"description,omitempty" binding:"omitempty,max=20000"`
	Location       *string               `json:"location,omitempty" binding:"omitempty,max=255"`
	EmploymentType *model.EmploymentType `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	Remote         *bool                 `json:"remote,omitempty"`
	SalaryMin      *int32                `json:"salary_min,omitempty" binding:"omitempty,min=0"`
	SalaryMax      *int32                `json:"salary_max,omitempty" binding:"omitempty,min=0"`
	Status         *model.JobStatus      `json:"status,omitempty" binding:"omitempty,oneof=open closed draft"`
}

// ListJobsQuery binds the public job search query string.
type ListJobsQuery struct {
	Q        *string `form:"q" binding:"omitempty,max=200"`
	Location *string `form:"location" binding:"omitempty,max=255"`
	Type     *string `form:"type" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	Remote   *bool   `form:"remote"`
	Limit    int32   `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset   int32   `form:"offset" binding:"omitempty,min=0"`
}

func (q ListJobsQuery) Filter() model.JobFilter {
	f := model.JobFilter{
		Query:    q.Q,
		Location: q.Location,
		Remote:   q.Remote,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	if q.Type != nil {
		t := model.EmploymentType(*q.Type)
		f.EmploymentType = &t
	}
	return f
}

type JobResponse struct {
	ID             int64                `json:"id,string"`
	CompanyID      int64                `json:"company_id,string"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       *string              `json:"location,omitempty"`
	EmploymentType model.EmploymentType `json:"employment_type"`
	Remote         bool                 `json:"remote"`
	SalaryMin      *int32               `json:"salary_min,omitempty"`
	SalaryMax      *int32               `json:"salary_max,omitempty"`
	Status         model.JobStatus      `json:"status"`
	Applicants     int32                `json:"applicants"`
	CompanyName    string               `json:"company_name,omitempty"`
	CompanySlug    string               `json:"company_slug,omitempty"`
	CompanyLogoURL *string              `json:"company_logo_url,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func ToJobResponse(j *model.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		CompanyID:      j.CompanyID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		EmploymentType: j.EmploymentType,
		Remote:         j.Remote,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Status:         j.Status,
		Applicants:     j.Applicants,
		CompanyName:    j.CompanyName,
		CompanySlug:    j.CompanySlug,
		CompanyLogoURL: j.CompanyLogoURL,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func ToJobResponses(jobs []model.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, ToJobResponse(&jobs[i]))
	}
	return out
}

type SaveJobRequest struct {
	JobID int64 `json:"job_id,string" binding:"required"`
}

type SavedJobResponse struct {
	Job     JobResponse `json:"job"`
	SavedAt time.Time   `json:"saved_at"`
}

func ToSavedJobResponses(list []model.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(list))
	for i := range list {
		out = append(out, SavedJobResponse{Job: ToJobResponse(&list[i].Job), SavedAt: list[i].SavedAt})
	}
	return out
}

type CreateJobAlertRequest struct {
	Keywords       string                `json:"keywords" binding:"required,min=1,max=255"`
	Location       *string               `json:"location,omitempty" binding:"omitempty,max=255"`
	EmploymentType *model.EmploymentType `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract internship temporary"`
	Frequency      model.AlertFrequency  `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
}

type UpdateJobAlertRequest struct {
	Keywords       *string               `json:"keywords,omitempty" binding:"omitempty,min=1,max=255"`
	Location       *string               `json:"location,omitempty" binding:"omitempty,max=255"`
	EmploymentType *model.EmploymentType `json:"employment_type,omitempty"`
	Frequency      *model.AlertFrequency `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
	Active         *bool                 `json:"active,omitempty"`
}

type JobAlertResponse struct {
	ID             int64                 `json:"id,string"`
	Keywords       string                `json:"keywords"`
	Location       *string               `json:"location,omitempty"`
	EmploymentType *model.EmploymentType `json:"employment_type,omitempty"`
	Frequency      model.AlertFrequency  `json:"frequency"`
	Active         bool                  `json:"active"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func ToJobAlertResponse(a *model.JobAlert) JobAlertResponse {
	return JobAlertResponse{
		ID:             a.ID,
		Keywords:       a.Keywords,
		Location:       a.Location,
		EmploymentType: a.EmploymentType,
		Frequency:      a.Frequency,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func ToJobAlertResponses(list []model.JobAlert) []JobAlertResponse {
	out := make([]JobAlertResponse, 0, len(list))
	for i := range list {
		out = append(out, ToJobAlertResponse(&list[i]))
	}
	return out
}
