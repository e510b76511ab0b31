package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hirely.app/api/common/id"
	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const maxCoverLetterLen = 10000

type ApplyInput struct {
	Source      *string
	CoverLetter *string
	ResumeURL   *string
}

type ApplicantService interface {
	// Apply records an application and bumps the job counter atomically.
	// Activity and notification writes after commit are best effort.
	Apply(ctx context.Context, userID, jobID int64, in ApplyInput) (*model.Applicant, error)
	Get(ctx context.Context, companyID, applicantID int64) (*model.Applicant, error)
	ListForCompany(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error)
	UpdateStatus(ctx context.Context, companyID, applicantID int64, status model.ApplicantStatus) (*model.Applicant, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Applicant, error)
}

type applicantService struct {
	jobs          store.JobStore
	applicants    store.ApplicantStore
	users         store.UserStore
	activities    store.ActivityStore
	notifications NotificationService
	txRunner      TxRunner
}

func NewApplicantService(
	jobs store.JobStore,
	applicants store.ApplicantStore,
	users store.UserStore,
	activities store.ActivityStore,
	notifications NotificationService,
	txRunner TxRunner,
) ApplicantService {
	return &applicantService{
		jobs:          jobs,
		applicants:    applicants,
		users:         users,
		activities:    activities,
		notifications: notifications,
		txRunner:      txRunner,
	}
}

func (s *applicantService) Apply(ctx context.Context, userID, jobID int64, in ApplyInput) (*model.Applicant, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		JobID:     logger.Ptr(jobID),
		Component: "hirely.service.applicant",
	})
	sc := logger.StartSpan(ctx, "applicant.apply")
	defer sc.End()
	ctx = sc.Context()

	if in.CoverLetter != nil && len(*in.CoverLetter) > maxCoverLetterLen {
		return nil, invalid("cover_letter", fmt.Sprintf("must be at most %d characters", maxCoverLetterLen))
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err, "getting job")
	}
	if job.Status != model.JobStatusOpen {
		return nil, ErrNotFound
	}

	source := model.DefaultApplicantSource
	if in.Source != nil && strings.TrimSpace(*in.Source) != "" {
		source = strings.TrimSpace(*in.Source)
	}
	applicant := &model.Applicant{
		ID:          id.New(),
		JobID:       jobID,
		UserID:      userID,
		Status:      model.ApplicantStatusNew,
		Source:      source,
		CoverLetter: patchText(nil, in.CoverLetter),
		ResumeURL:   patchText(nil, in.ResumeURL),
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Applicants().Create(ctx, applicant); err != nil {
			return storeErr(err, "creating applicant")
		}
		if err := stores.Jobs().IncrementApplicants(ctx, jobID); err != nil {
			return fmt.Errorf("incrementing applicants: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			slog.InfoContext(ctx, "duplicate application rejected")
		} else {
			sc.RecordError(err)
		}
		return nil, err
	}

	name := "A candidate"
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		name = user.Name
	} else {
		slog.WarnContext(ctx, "failed to load applicant name", "error", err)
	}

	recordActivity(ctx, s.activities, job.CompanyID, model.ActivityApplication,
		fmt.Sprintf("%s applied to %s", name, job.Title), &job.ID)
	s.notifications.Notify(ctx, notifyCompany(job.CompanyID, model.NotificationNewApplicant,
		"New applicant for "+job.Title,
		fmt.Sprintf("%s applied to %s.", name, job.Title),
		fmt.Sprintf("/company/applicants/%d", applicant.ID),
	))

	slog.InfoContext(ctx, "application created", "applicant_id", applicant.ID)
	return applicant, nil
}

func (s *applicantService) Get(ctx context.Context, companyID, applicantID int64) (*model.Applicant, error) {
	a, err := s.applicants.GetForCompany(ctx, applicantID, companyID)
	if err != nil {
		return nil, storeErr(err, "getting applicant")
	}
	return a, nil
}

func (s *applicantService) ListForCompany(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, invalid("status", "unknown applicant status")
	}
	list, err := s.applicants.ListForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, storeErr(err, "listing applicants")
	}
	return list, nil
}

func (s *applicantService) UpdateStatus(ctx context.Context, companyID, applicantID int64, status model.ApplicantStatus) (*model.Applicant, error) {
	if !status.Valid() {
		return nil, invalid("status", "unknown applicant status")
	}
	a, err := s.applicants.UpdateStatusForCompany(ctx, applicantID, companyID, status)
	if err != nil {
		return nil, storeErr(err, "updating applicant status")
	}

	title := "your application"
	if job, err := s.jobs.GetForCompany(ctx, a.JobID, companyID); err == nil {
		title = job.Title
		recordActivity(ctx, s.activities, companyID, model.ActivityStatusChange,
			fmt.Sprintf("Moved an applicant for %s to %s", job.Title, status), &job.ID)
	}
	s.notifications.Notify(ctx, notifyUser(a.UserID, model.NotificationApplicantStatus,
		"Application update",
		fmt.Sprintf("Your application for %s is now %s.", title, status),
		"/me/applications",
	))
	return a, nil
}

func (s *applicantService) ListForUser(ctx context.Context, userID int64) ([]model.Applicant, error) {
	list, err := s.applicants.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "listing applications")
	}
	return list, nil
}
