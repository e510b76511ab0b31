package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type jobAlertStore struct {
	queries *sqlc.Queries
}

func newJobAlertStore(queries *sqlc.Queries) JobAlertStore {
	return &jobAlertStore{queries: queries}
}

func (s *jobAlertStore) Create(ctx context.Context, alert *model.JobAlert) error {
	row, err := s.queries.CreateJobAlert(ctx, sqlc.CreateJobAlertParams{
		ID:             alert.ID,
		UserID:         alert.UserID,
		Keywords:       alert.Keywords,
		Location:       alert.Location,
		EmploymentType: enumPtr[model.EmploymentType, string](alert.EmploymentType),
		Frequency:      string(alert.Frequency),
		Active:         alert.Active,
	})
	if err != nil {
		return mapErr(err)
	}
	*alert = *toJobAlertModel(row)
	return nil
}

func (s *jobAlertStore) GetForUser(ctx context.Context, id, userID int64) (*model.JobAlert, error) {
	row, err := s.queries.GetJobAlertForUser(ctx, sqlc.GetJobAlertForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toJobAlertModel(row), nil
}

func (s *jobAlertStore) Update(ctx context.Context, alert *model.JobAlert) error {
	row, err := s.queries.UpdateJobAlert(ctx, sqlc.UpdateJobAlertParams{
		ID:             alert.ID,
		UserID:         alert.UserID,
		Keywords:       alert.Keywords,
		Location:       alert.Location,
		EmploymentType: enumPtr[model.EmploymentType, string](alert.EmploymentType),
		Frequency:      string(alert.Frequency),
		Active:         alert.Active,
	})
	if err != nil {
		return mapErr(err)
	}
	*alert = *toJobAlertModel(row)
	return nil
}

func (s *jobAlertStore) Delete(ctx context.Context, id, userID int64) error {
	return affected(s.queries.DeleteJobAlert(ctx, sqlc.DeleteJobAlertParams{
		ID:     id,
		UserID: userID,
	}))
}

func (s *jobAlertStore) ListByUser(ctx context.Context, userID int64) ([]model.JobAlert, error) {
	rows, err := s.queries.ListJobAlertsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.JobAlert, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toJobAlertModel(row))
	}
	return out, nil
}

func toJobAlertModel(row sqlc.JobAlert) *model.JobAlert {
	return &model.JobAlert{
		ID:             row.ID,
		UserID:         row.UserID,
		Keywords:       row.Keywords,
		Location:       row.Location,
		EmploymentType: enumPtr[string, model.EmploymentType](row.EmploymentType),
		Frequency:      model.AlertFrequency(row.Frequency),
		Active:         row.Active,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
