package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, a *model.Activity) error {
	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		UserID:      a.UserID,
		Type:        a.Type,
		Description: a.Description,
		JobID:       a.JobID,
	})
	if err != nil {
		return mapErr(err)
	}
	*a = model.Activity{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		UserID:      row.UserID,
		Type:        row.Type,
		Description: row.Description,
		JobID:       row.JobID,
		CreatedAt:   row.CreatedAt.Time,
	}
	return nil
}

func (s *activityStore) ListForCompany(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error) {
	rows, err := s.queries.ListActivitiesForCompany(ctx, sqlc.ListActivitiesForCompanyParams{
		CompanyID: &companyID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Activity{
			ID:          row.ID,
			CompanyID:   row.CompanyID,
			UserID:      row.UserID,
			Type:        row.Type,
			Description: row.Description,
			JobID:       row.JobID,
			CreatedAt:   row.CreatedAt.Time,
		})
	}
	return out, nil
}
