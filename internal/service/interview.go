package service

import (
	"context"
	"fmt"
	"time"

	"hirely.app/api/common/id"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const (
	defaultInterviewMinutes = 30
	maxInterviewMinutes     = 480
)

type InterviewInput struct {
	ApplicantID     int64
	ScheduledAt     time.Time
	DurationMinutes int32
	Type            model.InterviewType
	Location        *string
	Notes           *string
}

type InterviewPatch struct {
	ScheduledAt     *time.Time
	DurationMinutes *int32
	Type            *model.InterviewType
	Location        *string
	Notes           *string
	Status          *model.InterviewStatus
}

type InterviewService interface {
	// Create schedules an interview and moves the applicant to the interview stage.
	Create(ctx context.Context, companyID int64, in InterviewInput) (*model.Interview, error)
	Update(ctx context.Context, companyID, interviewID int64, patch InterviewPatch) (*model.Interview, error)
	Cancel(ctx context.Context, companyID, interviewID int64) (*model.Interview, error)
	Delete(ctx context.Context, companyID, interviewID int64) error
	ListForCompany(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Interview, error)
}

type interviewService struct {
	interviews    store.InterviewStore
	applicants    store.ApplicantStore
	activities    store.ActivityStore
	notifications NotificationService
	txRunner      TxRunner
}

func NewInterviewService(
	interviews store.InterviewStore,
	applicants store.ApplicantStore,
	activities store.ActivityStore,
	notifications NotificationService,
	txRunner TxRunner,
) InterviewService {
	return &interviewService{
		interviews:    interviews,
		applicants:    applicants,
		activities:    activities,
		notifications: notifications,
		txRunner:      txRunner,
	}
}

func (s *interviewService) Create(ctx context.Context, companyID int64, in InterviewInput) (*model.Interview, error) {
	if in.ScheduledAt.IsZero() {
		return nil, invalid("scheduled_at", "is required")
	}
	if in.DurationMinutes == 0 {
		in.DurationMinutes = defaultInterviewMinutes
	}
	if in.Type == "" {
		in.Type = model.InterviewVideo
	}

	interview := &model.Interview{
		ID:              id.New(),
		ApplicantID:     in.ApplicantID,
		CompanyID:       companyID,
		ScheduledAt:     in.ScheduledAt.UTC(),
		DurationMinutes: in.DurationMinutes,
		Type:            in.Type,
		Location:        patchText(nil, in.Location),
		Notes:           patchText(nil, in.Notes),
		Status:          model.InterviewScheduled,
	}
	if err := validateInterview(interview); err != nil {
		return nil, err
	}

	applicant, err := s.applicants.GetForCompany(ctx, in.ApplicantID, companyID)
	if err != nil {
		return nil, storeErr(err, "getting applicant")
	}
	interview.JobID = applicant.JobID

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Interviews().Create(ctx, interview); err != nil {
			return storeErr(err, "creating interview")
		}
		if err := stores.Applicants().UpdateStatus(ctx, applicant.ID, model.ApplicantStatusInterview); err != nil {
			return storeErr(err, "updating applicant status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	when := interview.ScheduledAt.Format("Jan 2, 2006 15:04 MST")
	recordActivity(ctx, s.activities, companyID, model.ActivityInterview,
		fmt.Sprintf("Scheduled an interview with %s for %s", applicant.UserName, applicant.JobTitle), &interview.JobID)
	s.notifications.Notify(ctx, notifyUser(applicant.UserID, model.NotificationInterview,
		"Interview scheduled",
		fmt.Sprintf("Your %s interview for %s is on %s.", interview.Type, applicant.JobTitle, when),
		"/me/interviews",
	))

	return interview, nil
}

func (s *interviewService) Update(ctx context.Context, companyID, interviewID int64, patch InterviewPatch) (*model.Interview, error) {
	interview, err := s.interviews.GetForCompany(ctx, interviewID, companyID)
	if err != nil {
		return nil, storeErr(err, "getting interview")
	}

	if patch.ScheduledAt != nil {
		interview.ScheduledAt = patch.ScheduledAt.UTC()
	}
	if patch.DurationMinutes != nil {
		interview.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Type != nil {
		interview.Type = *patch.Type
	}
	interview.Location = patchText(interview.Location, patch.Location)
	interview.Notes = patchText(interview.Notes, patch.Notes)
	if patch.Status != nil {
		interview.Status = *patch.Status
	}
	if err := validateInterview(interview); err != nil {
		return nil, err
	}

	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, storeErr(err, "updating interview")
	}
	return interview, nil
}

func (s *interviewService) Cancel(ctx context.Context, companyID, interviewID int64) (*model.Interview, error) {
	status := model.InterviewCancelled
	return s.Update(ctx, companyID, interviewID, InterviewPatch{Status: &status})
}

func (s *interviewService) Delete(ctx context.Context, companyID, interviewID int64) error {
	return storeErr(s.interviews.Delete(ctx, interviewID, companyID), "deleting interview")
}

func (s *interviewService) ListForCompany(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error) {
	list, err := s.interviews.ListForCompany(ctx, companyID, upcomingOnly)
	if err != nil {
		return nil, storeErr(err, "listing interviews")
	}
	return list, nil
}

func (s *interviewService) ListForUser(ctx context.Context, userID int64) ([]model.Interview, error) {
	list, err := s.interviews.ListForUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "listing interviews")
	}
	return list, nil
}

func validateInterview(iv *model.Interview) error {
	if iv.ScheduledAt.IsZero() {
		return invalid("scheduled_at", "is required")
	}
	if iv.DurationMinutes < 1 || iv.DurationMinutes > maxInterviewMinutes {
		return invalid("duration_minutes", fmt.Sprintf("must be between 1 and %d", maxInterviewMinutes))
	}
	if !iv.Type.Valid() {
		return invalid("type", "must be video, phone or onsite")
	}
	if !iv.Status.Valid() {
		return invalid("status", "must be scheduled, completed or cancelled")
	}
	return nil
}
