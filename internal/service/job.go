package service

import (
	"context"
	"fmt"
	"strings"

	"hirely.app/api/common/id"
	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const (
	defaultJobPageSize = 20
	maxJobPageSize     = 100
	maxTitleLen        = 200
)

type JobInput struct {
	Title          string
	Description    string
	Location       *string
	EmploymentType model.EmploymentType
	Remote         bool
	SalaryMin      *int32
	SalaryMax      *int32
	Status         model.JobStatus
}

// JobPatch changes only the fields that are set.
type JobPatch struct {
	Title          *string
	Description    *string
	Location       *string
	EmploymentType *model.EmploymentType
	Remote         *bool
	SalaryMin      *int32
	SalaryMax      *int32
	Status         *model.JobStatus
}

type JobService interface {
	Create(ctx context.Context, companyID int64, in JobInput) (*model.Job, error)
	Update(ctx context.Context, companyID, jobID int64, patch JobPatch) (*model.Job, error)
	Delete(ctx context.Context, companyID, jobID int64) error
	// Get is public; draft jobs are only visible to their owner through ListForCompany.
	Get(ctx context.Context, jobID int64) (*model.Job, error)
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	ListForCompany(ctx context.Context, companyID int64) ([]model.Job, error)
}

type jobService struct {
	jobs       store.JobStore
	activities store.ActivityStore
}

func NewJobService(jobs store.JobStore, activities store.ActivityStore) JobService {
	return &jobService{jobs: jobs, activities: activities}
}

func (s *jobService) Create(ctx context.Context, companyID int64, in JobInput) (*model.Job, error) {
	if in.EmploymentType == "" {
		in.EmploymentType = model.EmploymentFullTime
	}
	if in.Status == "" {
		in.Status = model.JobStatusOpen
	}
	job := &model.Job{
		ID:             id.New(),
		CompanyID:      companyID,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Location:       patchText(nil, in.Location),
		EmploymentType: in.EmploymentType,
		Remote:         in.Remote,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Status:         in.Status,
	}
	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, storeErr(err, "creating job")
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{JobID: logger.Ptr(job.ID)})
	recordActivity(ctx, s.activities, companyID, model.ActivityJobCreated,
		fmt.Sprintf("Posted %s", job.Title), &job.ID)

	return job, nil
}

func (s *jobService) Update(ctx context.Context, companyID, jobID int64, patch JobPatch) (*model.Job, error) {
	job, err := s.jobs.GetForCompany(ctx, jobID, companyID)
	if err != nil {
		return nil, storeErr(err, "getting job")
	}

	if patch.Title != nil {
		job.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		job.Description = strings.TrimSpace(*patch.Description)
	}
	job.Location = patchText(job.Location, patch.Location)
	if patch.EmploymentType != nil {
		job.EmploymentType = *patch.EmploymentType
	}
	if patch.Remote != nil {
		job.Remote = *patch.Remote
	}
	if patch.SalaryMin != nil {
		job.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.SalaryMax = patch.SalaryMax
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, storeErr(err, "updating job")
	}

	if patch.Status != nil {
		recordActivity(ctx, s.activities, companyID, model.ActivityJobUpdated,
			fmt.Sprintf("Marked %s as %s", job.Title, job.Status), &job.ID)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, companyID, jobID int64) error {
	return storeErr(s.jobs.Delete(ctx, jobID, companyID), "deleting job")
}

func (s *jobService) Get(ctx context.Context, jobID int64) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err, "getting job")
	}
	if job.Status == model.JobStatusDraft {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultJobPageSize
	}
	if filter.Limit > maxJobPageSize {
		filter.Limit = maxJobPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.EmploymentType != nil && !filter.EmploymentType.Valid() {
		return nil, invalid("type", "unknown employment type")
	}
	filter.Query = patchText(nil, filter.Query)
	filter.Location = patchText(nil, filter.Location)

	jobs, err := s.jobs.ListOpen(ctx, filter)
	if err != nil {
		return nil, storeErr(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) ListForCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "listing company jobs")
	}
	return jobs, nil
}

func validateJob(job *model.Job) error {
	if job.Title == "" {
		return invalid("title", "is required")
	}
	if len(job.Title) > maxTitleLen {
		return invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}
	if !job.EmploymentType.Valid() {
		return invalid("employment_type", "unknown employment type")
	}
	if !job.Status.Valid() {
		return invalid("status", "must be open, closed or draft")
	}
	if job.SalaryMin != nil && *job.SalaryMin < 0 {
		return invalid("salary_min", "must not be negative")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return invalid("salary_max", "must be greater than or equal to salary_min")
	}
	return nil
}
