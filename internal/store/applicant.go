package store

import (
	"context"
	"time"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type applicantStore struct {
	queries *sqlc.Queries
}

func newApplicantStore(queries *sqlc.Queries) ApplicantStore {
	return &applicantStore{queries: queries}
}

// Create returns ErrConflict when the user already applied to the job.
func (s *applicantStore) Create(ctx context.Context, applicant *model.Applicant) error {
	row, err := s.queries.CreateApplicant(ctx, sqlc.CreateApplicantParams{
		ID:          applicant.ID,
		JobID:       applicant.JobID,
		UserID:      applicant.UserID,
		Status:      string(applicant.Status),
		Source:      applicant.Source,
		CoverLetter: applicant.CoverLetter,
		ResumeUrl:   applicant.ResumeURL,
	})
	if err != nil {
		return mapErr(err)
	}
	*applicant = *toApplicantModel(row)
	return nil
}

func (s *applicantStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Applicant, error) {
	row, err := s.queries.GetApplicantForCompany(ctx, sqlc.GetApplicantForCompanyParams{
		ID:        id,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	a := toApplicantModel(sqlc.Applicant{
		ID:          row.ID,
		JobID:       row.JobID,
		UserID:      row.UserID,
		Status:      row.Status,
		Source:      row.Source,
		CoverLetter: row.CoverLetter,
		ResumeUrl:   row.ResumeUrl,
		AppliedAt:   row.AppliedAt,
		UpdatedAt:   row.UpdatedAt,
	})
	a.JobTitle = row.JobTitle
	a.UserName = row.UserName
	a.UserEmail = row.UserEmail
	return a, nil
}

func (s *applicantStore) ListForCompany(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error) {
	rows, err := s.queries.ListApplicantsForCompany(ctx, sqlc.ListApplicantsForCompanyParams{
		CompanyID: companyID,
		JobID:     filter.JobID,
		Status:    enumPtr[model.ApplicantStatus, string](filter.Status),
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Applicant, 0, len(rows))
	for _, row := range rows {
		a := toApplicantModel(sqlc.Applicant{
			ID:          row.ID,
			JobID:       row.JobID,
			UserID:      row.UserID,
			Status:      row.Status,
			Source:      row.Source,
			CoverLetter: row.CoverLetter,
			ResumeUrl:   row.ResumeUrl,
			AppliedAt:   row.AppliedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		a.JobTitle = row.JobTitle
		a.UserName = row.UserName
		a.UserEmail = row.UserEmail
		out = append(out, *a)
	}
	return out, nil
}

func (s *applicantStore) UpdateStatusForCompany(ctx context.Context, id, companyID int64, status model.ApplicantStatus) (*model.Applicant, error) {
	row, err := s.queries.UpdateApplicantStatusForCompany(ctx, sqlc.UpdateApplicantStatusForCompanyParams{
		ID:        id,
		CompanyID: companyID,
		Status:    string(status),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toApplicantModel(row), nil
}

func (s *applicantStore) UpdateStatus(ctx context.Context, id int64, status model.ApplicantStatus) error {
	return s.queries.UpdateApplicantStatus(ctx, sqlc.UpdateApplicantStatusParams{
		ID:     id,
		Status: string(status),
	})
}

func (s *applicantStore) ListByUser(ctx context.Context, userID int64) ([]model.Applicant, error) {
	rows, err := s.queries.ListApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Applicant, 0, len(rows))
	for _, row := range rows {
		a := toApplicantModel(sqlc.Applicant{
			ID:          row.ID,
			JobID:       row.JobID,
			UserID:      row.UserID,
			Status:      row.Status,
			Source:      row.Source,
			CoverLetter: row.CoverLetter,
			ResumeUrl:   row.ResumeUrl,
			AppliedAt:   row.AppliedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		a.JobTitle = row.JobTitle
		a.JobStatus = model.JobStatus(row.JobStatus)
		a.CompanyName = row.CompanyName
		a.CompanySlug = row.CompanySlug
		out = append(out, *a)
	}
	return out, nil
}

func (s *applicantStore) ListAppliedSince(ctx context.Context, companyID int64, since time.Time) ([]time.Time, error) {
	rows, err := s.queries.ListApplicantDatesForCompany(ctx, sqlc.ListApplicantDatesForCompanyParams{
		CompanyID: companyID,
		AppliedAt: ts(since),
	})
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, len(rows))
	for _, t := range rows {
		out = append(out, t.Time)
	}
	return out, nil
}

func (s *applicantStore) ListSources(ctx context.Context, companyID int64) ([]string, error) {
	return s.queries.ListApplicantSourcesForCompany(ctx, companyID)
}

func (s *applicantStore) CountByCompany(ctx context.Context, companyID int64) (model.ApplicantCounts, error) {
	row, err := s.queries.CountApplicantsByCompany(ctx, companyID)
	if err != nil {
		return model.ApplicantCounts{}, err
	}
	return model.ApplicantCounts{Total: row.Total, New: row.New, Offers: row.Offers}, nil
}

func (s *applicantStore) CountByUserStatus(ctx context.Context, userID int64) (map[model.ApplicantStatus]int64, error) {
	rows, err := s.queries.CountApplicationsByUserStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[model.ApplicantStatus]int64, len(rows))
	for _, row := range rows {
		out[model.ApplicantStatus(row.Status)] = row.Count
	}
	return out, nil
}

func toApplicantModel(row sqlc.Applicant) *model.Applicant {
	return &model.Applicant{
		ID:          row.ID,
		JobID:       row.JobID,
		UserID:      row.UserID,
		Status:      model.ApplicantStatus(row.Status),
		Source:      row.Source,
		CoverLetter: row.CoverLetter,
		ResumeURL:   row.ResumeUrl,
		AppliedAt:   row.AppliedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
