package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type ApplyRequest struct {
	Source      *string `json:"source,omitempty" binding:"omitempty,max=255"`
	CoverLetter *string `json:"cover_letter,omitempty" binding:"omitempty,max=10000"`
	ResumeURL   *string `json:"resume_url,omitempty" binding:"omitempty,max=2048"`
}

type UpdateApplicantStatusRequest struct {
	Status model.ApplicantStatus `json:"status" binding:"required,oneof=new reviewing interview offer rejected"`
}

type ListApplicantsQuery struct {
	JobID  *int64  `form:"job_id"`
	Status *string `form:"status" binding:"omitempty,oneof=new reviewing interview offer rejected"`
}

func (q ListApplicantsQuery) Filter() model.ApplicantFilter {
	f := model.ApplicantFilter{JobID: q.JobID}
	if q.Status != nil {
		s := model.ApplicantStatus(*q.Status)
		f.Status = &s
	}
	return f
}

type ApplicantResponse struct {
	ID          int64                 `json:"id,string"`
	JobID       int64                 `json:"job_id,string"`
	UserID      int64                 `json:"user_id,string"`
	Status      model.ApplicantStatus `json:"status"`
	Source      string                `json:"source"`
	CoverLetter *string               `json:"cover_letter,omitempty"`
	ResumeURL   *string               `json:"resume_url,omitempty"`
	AppliedAt   time.Time             `json:"applied_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	JobTitle    string                `json:"job_title,omitempty"`
	JobStatus   model.JobStatus       `json:"job_status,omitempty"`
	UserName    string                `json:"user_name,omitempty"`
	UserEmail   string                `json:"user_email,omitempty"`
	CompanyName string                `json:"company_name,omitempty"`
	CompanySlug string                `json:"company_slug,omitempty"`
}

func ToApplicantResponse(a *model.Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		UserID:      a.UserID,
		Status:      a.Status,
		Source:      a.Source,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
		JobTitle:    a.JobTitle,
		JobStatus:   a.JobStatus,
		UserName:    a.UserName,
		UserEmail:   a.UserEmail,
		CompanyName: a.CompanyName,
		CompanySlug: a.CompanySlug,
	}
}

func ToApplicantResponses(list []model.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(list))
	for i := range list {
		out = append(out, ToApplicantResponse(&list[i]))
	}
	return out
}
