package service

import (
	"context"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

type SavedJobService interface {
	// Save is idempotent. The job must exist and not be a draft.
	Save(ctx context.Context, userID, jobID int64) error
	Unsave(ctx context.Context, userID, jobID int64) error
	List(ctx context.Context, userID int64) ([]model.SavedJob, error)
}

type savedJobService struct {
	saved store.SavedJobStore
	jobs  store.JobStore
}

func NewSavedJobService(saved store.SavedJobStore, jobs store.JobStore) SavedJobService {
	return &savedJobService{saved: saved, jobs: jobs}
}

func (s *savedJobService) Save(ctx context.Context, userID, jobID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return storeErr(err, "getting job")
	}
	if job.Status == model.JobStatusDraft {
		return ErrNotFound
	}
	return storeErr(s.saved.Save(ctx, userID, jobID), "saving job")
}

func (s *savedJobService) Unsave(ctx context.Context, userID, jobID int64) error {
	return storeErr(s.saved.Unsave(ctx, userID, jobID), "unsaving job")
}

func (s *savedJobService) List(ctx context.Context, userID int64) ([]model.SavedJob, error) {
	list, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "listing saved jobs")
	}
	return list, nil
}
