package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/store"
)

var _ = Describe("JobAlertService", func() {
	var (
		ctx    context.Context
		alerts *mockJobAlertStore
		svc    service.JobAlertService
	)

	BeforeEach(func() {
		ctx = context.Background()
		alerts = &mockJobAlertStore{}
		svc = service.NewJobAlertService(alerts)
	})

	It("defaults the frequency to daily and activates the alert", func() {
		var created *model.JobAlert
		alerts.createFn = func(_ context.Context, a *model.JobAlert) error {
			created = a
			return nil
		}

		alert, err := svc.Create(ctx, 20, service.JobAlertInput{Keywords: "  golang  "})
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeIdenticalTo(alert))
		Expect(alert.UserID).To(Equal(int64(20)))
		Expect(alert.Keywords).To(Equal("golang"))
		Expect(alert.Frequency).To(Equal(model.AlertDaily))
		Expect(alert.Active).To(BeTrue())
	})

	It("rejects blank keywords before touching the store", func() {
		alerts.createFn = func(context.Context, *model.JobAlert) error {
			Fail("store should not be called")
			return nil
		}
		_, err := svc.Create(ctx, 20, service.JobAlertInput{Keywords: " "})
		Expect(err).To(MatchError(service.ErrValidation))
	})

	It("rejects an unknown frequency", func() {
		_, err := svc.Create(ctx, 20, service.JobAlertInput{Keywords: "go", Frequency: model.AlertFrequency("hourly")})
		var verr *service.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Field).To(Equal("frequency"))
	})

	It("clears the employment type when patched with an empty value", func() {
		contract := model.EmploymentContract
		alerts.getForUserFn = func(_ context.Context, id, userID int64) (*model.JobAlert, error) {
			Expect(id).To(Equal(int64(5)))
			Expect(userID).To(Equal(int64(20)))
			return &model.JobAlert{ID: id, UserID: userID, Keywords: "go", Frequency: model.AlertDaily, EmploymentType: &contract, Active: true}, nil
		}
		empty := model.EmploymentType("")
		off := false

		alert, err := svc.Update(ctx, 20, 5, service.JobAlertPatch{EmploymentType: &empty, Active: &off})
		Expect(err).NotTo(HaveOccurred())
		Expect(alert.EmploymentType).To(BeNil())
		Expect(alert.Active).To(BeFalse())
	})

	It("maps a foreign alert to not found", func() {
		alerts.getForUserFn = func(context.Context, int64, int64) (*model.JobAlert, error) {
			return nil, store.ErrNotFound
		}
		_, err := svc.Update(ctx, 20, 5, service.JobAlertPatch{})
		Expect(err).To(MatchError(service.ErrNotFound))

		alerts.deleteFn = func(context.Context, int64, int64) error { return store.ErrNotFound }
		Expect(svc.Delete(ctx, 20, 5)).To(MatchError(service.ErrNotFound))
	})
})

var _ = Describe("SavedJobService", func() {
	var (
		ctx   context.Context
		saved *mockSavedJobStore
		jobs  *mockJobStore
		svc   service.SavedJobService
	)

	BeforeEach(func() {
		ctx = context.Background()
		saved = &mockSavedJobStore{}
		jobs = &mockJobStore{}
		svc = service.NewSavedJobService(saved, jobs)
	})

	It("saves an existing open job", func() {
		jobs.getByIDFn = func(_ context.Context, id int64) (*model.Job, error) {
			return &model.Job{ID: id, Status: model.JobStatusOpen}, nil
		}
		var gotUser, gotJob int64
		saved.saveFn = func(_ context.Context, userID, jobID int64) error {
			gotUser, gotJob = userID, jobID
			return nil
		}

		Expect(svc.Save(ctx, 20, 300)).To(Succeed())
		Expect(gotUser).To(Equal(int64(20)))
		Expect(gotJob).To(Equal(int64(300)))
	})

	It("hides drafts and missing jobs", func() {
		jobs.getByIDFn = func(_ context.Context, id int64) (*model.Job, error) {
			return &model.Job{ID: id, Status: model.JobStatusDraft}, nil
		}
		Expect(svc.Save(ctx, 20, 300)).To(MatchError(service.ErrNotFound))

		jobs.getByIDFn = func(context.Context, int64) (*model.Job, error) { return nil, store.ErrNotFound }
		Expect(svc.Save(ctx, 20, 301)).To(MatchError(service.ErrNotFound))
	})

	It("reports unsaving a job that was not saved", func() {
		saved.unsaveFn = func(context.Context, int64, int64) error { return store.ErrNotFound }
		Expect(svc.Unsave(ctx, 20, 300)).To(MatchError(service.ErrNotFound))
	})
})

var _ = Describe("ProfileService", func() {
	var (
		ctx   context.Context
		users *mockUserStore
		svc   service.ProfileService
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{
			getByIDFn: func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Name: "Sam", Skills: []string{"Go"}}, nil
			},
		}
		svc = service.NewProfileService(users)
	})

	It("normalizes skills and keeps untouched fields", func() {
		headline := "  Backend engineer "
		user, err := svc.Update(ctx, 20, service.ProfilePatch{
			Headline: &headline,
			Skills:   []string{" Go ", "go", "", "Postgres"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Name).To(Equal("Sam"))
		Expect(*user.Headline).To(Equal("Backend engineer"))
		Expect(user.Skills).To(Equal([]string{"Go", "Postgres"}))
	})

	It("leaves skills alone when the patch omits them", func() {
		user, err := svc.Update(ctx, 20, service.ProfilePatch{})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Skills).To(Equal([]string{"Go"}))
	})

	It("refuses a blank name", func() {
		blank := "   "
		_, err := svc.Update(ctx, 20, service.ProfilePatch{Name: &blank})
		Expect(err).To(MatchError(service.ErrValidation))
	})
})
