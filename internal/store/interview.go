package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type interviewStore struct {
	queries *sqlc.Queries
}

func newInterviewStore(queries *sqlc.Queries) InterviewStore {
	return &interviewStore{queries: queries}
}

func (s *interviewStore) Create(ctx context.Context, iv *model.Interview) error {
	row, err := s.queries.CreateInterview(ctx, sqlc.CreateInterviewParams{
		ID:              iv.ID,
		ApplicantID:     iv.ApplicantID,
		CompanyID:       iv.CompanyID,
		JobID:           iv.JobID,
		ScheduledAt:     ts(iv.ScheduledAt),
		DurationMinutes: iv.DurationMinutes,
		Type:            string(iv.Type),
		Location:        iv.Location,
		Notes:           iv.Notes,
	})
	if err != nil {
		return mapErr(err)
	}
	*iv = *toInterviewModel(row)
	return nil
}

func (s *interviewStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Interview, error) {
	row, err := s.queries.GetInterviewForCompany(ctx, sqlc.GetInterviewForCompanyParams{
		ID:        id,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInterviewModel(row), nil
}

func (s *interviewStore) Update(ctx context.Context, iv *model.Interview) error {
	row, err := s.queries.UpdateInterview(ctx, sqlc.UpdateInterviewParams{
		ID:              iv.ID,
		CompanyID:       iv.CompanyID,
		ScheduledAt:     ts(iv.ScheduledAt),
		DurationMinutes: iv.DurationMinutes,
		Type:            string(iv.Type),
		Location:        iv.Location,
		Notes:           iv.Notes,
		Status:          string(iv.Status),
	})
	if err != nil {
		return mapErr(err)
	}
	*iv = *toInterviewModel(row)
	return nil
}

func (s *interviewStore) Delete(ctx context.Context, id, companyID int64) error {
	return affected(s.queries.DeleteInterview(ctx, sqlc.DeleteInterviewParams{
		ID:        id,
		CompanyID: companyID,
	}))
}

func (s *interviewStore) ListForCompany(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error) {
	rows, err := s.queries.ListInterviewsForCompany(ctx, sqlc.ListInterviewsForCompanyParams{
		CompanyID:    companyID,
		UpcomingOnly: upcomingOnly,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Interview, 0, len(rows))
	for _, row := range rows {
		iv := toInterviewModel(sqlc.Interview{
			ID:              row.ID,
			ApplicantID:     row.ApplicantID,
			CompanyID:       row.CompanyID,
			JobID:           row.JobID,
			ScheduledAt:     row.ScheduledAt,
			DurationMinutes: row.DurationMinutes,
			Type:            row.Type,
			Location:        row.Location,
			Notes:           row.Notes,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
		iv.JobTitle = row.JobTitle
		iv.UserName = row.UserName
		out = append(out, *iv)
	}
	return out, nil
}

func (s *interviewStore) ListForUser(ctx context.Context, userID int64) ([]model.Interview, error) {
	rows, err := s.queries.ListInterviewsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Interview, 0, len(rows))
	for _, row := range rows {
		iv := toInterviewModel(sqlc.Interview{
			ID:              row.ID,
			ApplicantID:     row.ApplicantID,
			CompanyID:       row.CompanyID,
			JobID:           row.JobID,
			ScheduledAt:     row.ScheduledAt,
			DurationMinutes: row.DurationMinutes,
			Type:            row.Type,
			Location:        row.Location,
			Notes:           row.Notes,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
		iv.JobTitle = row.JobTitle
		iv.CompanyName = row.CompanyName
		out = append(out, *iv)
	}
	return out, nil
}

func (s *interviewStore) CountUpcomingForCompany(ctx context.Context, companyID int64) (int64, error) {
	return s.queries.CountUpcomingInterviewsForCompany(ctx, companyID)
}

func (s *interviewStore) CountUpcomingForUser(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountUpcomingInterviewsForUser(ctx, userID)
}

func toInterviewModel(row sqlc.Interview) *model.Interview {
	return &model.Interview{
		ID:              row.ID,
		ApplicantID:     row.ApplicantID,
		CompanyID:       row.CompanyID,
		JobID:           row.JobID,
		ScheduledAt:     row.ScheduledAt.Time,
		DurationMinutes: row.DurationMinutes,
		Type:            model.InterviewType(row.Type),
		Location:        row.Location,
		Notes:           row.Notes,
		Status:          model.InterviewStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
