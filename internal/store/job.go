package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type jobStore struct {
	queries *sqlc.Queries
}

func newJobStore(queries *sqlc.Queries) JobStore {
	return &jobStore{queries: queries}
}

func (s *jobStore) Create(ctx context.Context, job *model.Job) error {
	row, err := s.queries.CreateJob(ctx, sqlc.CreateJobParams{
		ID:             job.ID,
		CompanyID:      job.CompanyID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		EmploymentType: string(job.EmploymentType),
		Remote:         job.Remote,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Status:         string(job.Status),
	})
	if err != nil {
		return mapErr(err)
	}
	*job = *toJobModel(row)
	return nil
}

// GetByID returns the job with its company name and slug joined.
func (s *jobStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	row, err := s.queries.GetJobWithCompany(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
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
	return job, nil
}

func (s *jobStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Job, error) {
	row, err := s.queries.GetJobForCompany(ctx, sqlc.GetJobForCompanyParams{
		ID:        id,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toJobModel(row), nil
}

// Update writes every mutable column, scoped to job.CompanyID.
func (s *jobStore) Update(ctx context.Context, job *model.Job) error {
	row, err := s.queries.UpdateJob(ctx, sqlc.UpdateJobParams{
		ID:             job.ID,
		CompanyID:      job.CompanyID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		EmploymentType: string(job.EmploymentType),
		Remote:         job.Remote,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Status:         string(job.Status),
	})
	if err != nil {
		return mapErr(err)
	}
	*job = *toJobModel(row)
	return nil
}

func (s *jobStore) Delete(ctx context.Context, id, companyID int64) error {
	return affected(s.queries.DeleteJob(ctx, sqlc.DeleteJobParams{
		ID:        id,
		CompanyID: companyID,
	}))
}

func (s *jobStore) ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	rows, err := s.queries.ListJobsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toJobModels(rows), nil
}

func (s *jobStore) ListOpen(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	rows, err := s.queries.ListOpenJobs(ctx, sqlc.ListOpenJobsParams{
		Q:              filter.Query,
		Location:       filter.Location,
		EmploymentType: enumPtr[model.EmploymentType, string](filter.EmploymentType),
		Remote:         filter.Remote,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
	})
	if err != nil {
		return nil, err
	}
	jobs := make([]model.Job, 0, len(rows))
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
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (s *jobStore) ListOpenByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	rows, err := s.queries.ListOpenJobsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toJobModels(rows), nil
}

func (s *jobStore) IncrementApplicants(ctx context.Context, id int64) error {
	return s.queries.IncrementJobApplicants(ctx, id)
}

func (s *jobStore) CountByCompany(ctx context.Context, companyID int64) (model.JobCounts, error) {
	row, err := s.queries.CountJobsByCompany(ctx, companyID)
	if err != nil {
		return model.JobCounts{}, err
	}
	return model.JobCounts{Total: row.Total, Open: row.Open}, nil
}

func toJobModel(row sqlc.Job) *model.Job {
	return &model.Job{
		ID:             row.ID,
		CompanyID:      row.CompanyID,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		EmploymentType: model.EmploymentType(row.EmploymentType),
		Remote:         row.Remote,
		SalaryMin:      row.SalaryMin,
		SalaryMax:      row.SalaryMax,
		Status:         model.JobStatus(row.Status),
		Applicants:     row.Applicants,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toJobModels(rows []sqlc.Job) []model.Job {
	jobs := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, *toJobModel(row))
	}
	return jobs
}
