package store

import (
	"context"

	"hirely.app/api/common/id"
	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type savedJobStore struct {
	queries *sqlc.Queries
}

func newSavedJobStore(queries *sqlc.Queries) SavedJobStore {
	return &savedJobStore{queries: queries}
}

// Save is idempotent; saving twice keeps the first row.
func (s *savedJobStore) Save(ctx context.Context, userID, jobID int64) error {
	return mapErr(s.queries.SaveJob(ctx, sqlc.SaveJobParams{
		ID:     id.New(),
		UserID: userID,
		JobID:  jobID,
	}))
}

func (s *savedJobStore) Unsave(ctx context.Context, userID, jobID int64) error {
	return affected(s.queries.UnsaveJob(ctx, sqlc.UnsaveJobParams{
		UserID: userID,
		JobID:  jobID,
	}))
}

func (s *savedJobStore) ListByUser(ctx context.Context, userID int64) ([]model.SavedJob, error) {
	rows, err := s.queries.ListSavedJobsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.SavedJob, 0, len(rows))
	for _, row := range rows {
		job := toJobModel(sqlc.Job{
			ID:             row.ID,
			CompanyID:      row.CompanyID,
			Title:          row.Title,
			Description:    row.Description,
			Location:       row.Location,
			EmploymentType: row.EmploymentType,
			Remote:         row.Remote,
			SalaryMin:      row.SalaryMin,
			SalaryMax:      row.SalaryMax,
			Status:         row.Status,
			Applicants:     row.Applicants,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		})
		job.CompanyName = row.CompanyName
		job.CompanySlug = row.CompanySlug
		job.CompanyLogoURL = row.CompanyLogoUrl
		out = append(out, model.SavedJob{Job: *job, SavedAt: row.SavedAt.Time})
	}
	return out, nil
}

func (s *savedJobStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountSavedJobsByUser(ctx, userID)
}
