package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type CreateInterviewRequest struct {
	ApplicantID     int64               `json:"applicant_id,string" binding:"required"`
	ScheduledAt     time.Time           `json:"scheduled_at" binding:"required"`
	DurationMinutes int32               `json:"duration_minutes,omitempty" binding:"omitempty,min=1,max=480"`
	Type            model.InterviewType `json:"type,omitempty" binding:"omitempty,oneof=video phone onsite"`
	Location        *string             `json:"location,omitempty" binding:"omitempty,max=255"`
	Notes           *string             `json:"notes,omitempty" binding:"omitempty,max=10000"`
}

type UpdateInterviewRequest struct {
	ScheduledAt     *time.Time             `json:"scheduled_at,omitempty"`
	DurationMinutes *int32                 `json:"duration_minutes,omitempty" binding:"omitempty,min=1,max=480"`
	Type            *model.InterviewType   `json:"type,omitempty" binding:"omitempty,oneof=video phone onsite"`
	Location        *string                `json:"location,omitempty" binding:"omitempty,max=255"`
	Notes           *string                `json:"notes,omitempty" binding:"omitempty,max=10000"`
	Status          *model.InterviewStatus `json:"status,omitempty" binding:"omitempty,oneof=scheduled completed cancelled"`
}

type InterviewResponse struct {
	ID              int64                 `json:"id,string"`
	ApplicantID     int64                 `json:"applicant_id,string"`
	CompanyID       int64                 `json:"company_id,string"`
	JobID           int64                 `json:"job_id,string"`
	ScheduledAt     time.Time             `json:"scheduled_at"`
	DurationMinutes int32                 `json:"duration_minutes"`
	Type            model.InterviewType   `json:"type"`
	Location        *string               `json:"location,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
	Status          model.InterviewStatus `json:"status"`
	JobTitle        string                `json:"job_title,omitempty"`
	UserName        string                `json:"user_name,omitempty"`
	CompanyName     string                `json:"company_name,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func ToInterviewResponse(i *model.Interview) InterviewResponse {
	return InterviewResponse{
		ID:              i.ID,
		ApplicantID:     i.ApplicantID,
		CompanyID:       i.CompanyID,
		JobID:           i.JobID,
		ScheduledAt:     i.ScheduledAt,
		DurationMinutes: i.DurationMinutes,
		Type:            i.Type,
		Location:        i.Location,
		Notes:           i.Notes,
		Status:          i.Status,
		JobTitle:        i.JobTitle,
		UserName:        i.UserName,
		CompanyName:     i.CompanyName,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func ToInterviewResponses(list []model.Interview) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(list))
	for i := range list {
		out = append(out, ToInterviewResponse(&list[i]))
	}
	return out
}
