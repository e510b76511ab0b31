package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("CompanyHandler", func() {
	It("hides the contact email on the public page", func() {
		svc := &mockCompanyService{
			getPublicFn: func(_ context.Context, slug string) (*model.Company, []model.Job, error) {
				Expect(slug).To(Equal("acme"))
				return &model.Company{ID: 10, Name: "Acme", Slug: "acme", Email: "hr@acme.test"},
					[]model.Job{{ID: 1, Title: "Go Engineer", Status: model.JobStatusOpen}}, nil
			},
		}
		router := newRouter()
		router.GET("/companies/:slug", handler.NewCompanyHandler(svc).Public)

		w := perform(router, http.MethodGet, "/companies/acme", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["company"]).NotTo(HaveKey("email"))
		Expect(resp["jobs"]).To(HaveLen(1))
	})

	It("patches only the fields sent", func() {
		var got service.CompanyPatch
		svc := &mockCompanyService{
			updateFn: func(_ context.Context, companyID int64, patch service.CompanyPatch) (*model.Company, error) {
				got = patch
				return &model.Company{ID: companyID, Name: "Acme", Slug: "acme"}, nil
			},
		}
		router := newRouter()
		router.PATCH("/company/profile", as(companyPrincipal), handler.NewCompanyHandler(svc).UpdateProfile)

		w := perform(router, http.MethodPatch, "/company/profile", map[string]any{"website": "https://acme.test"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got.Name).To(BeNil())
		Expect(*got.Website).To(Equal("https://acme.test"))
	})
})

var _ = Describe("ProfileHandler", func() {
	It("always renders skills as a list", func() {
		svc := &mockProfileService{
			getFn: func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Name: "Jane"}, nil
			},
		}
		router := newRouter()
		router.GET("/me/profile", as(userPrincipal), handler.NewProfileHandler(svc).Get)

		w := perform(router, http.MethodGet, "/me/profile", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["skills"]).To(Equal([]any{}))
	})

	It("rejects more than fifty skills", func() {
		skills := make([]string, 51)
		for i := range skills {
			skills[i] = "go"
		}
		router := newRouter()
		router.PATCH("/me/profile", as(userPrincipal), handler.NewProfileHandler(&mockProfileService{}).Update)

		w := perform(router, http.MethodPatch, "/me/profile", map[string]any{"skills": skills})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("JobAlertHandler", func() {
	It("creates an alert", func() {
		var got service.JobAlertInput
		svc := &mockJobAlertService{
			createFn: func(_ context.Context, userID int64, in service.JobAlertInput) (*model.JobAlert, error) {
				got = in
				return &model.JobAlert{ID: 3, UserID: userID, Keywords: in.Keywords, Frequency: model.AlertDaily, Active: true}, nil
			},
		}
		router := newRouter()
		router.POST("/me/alerts", as(userPrincipal), handler.NewJobAlertHandler(svc).Create)

		w := perform(router, http.MethodPost, "/me/alerts", map[string]any{"keywords": "golang", "frequency": "weekly"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.Frequency).To(Equal(model.AlertWeekly))
		Expect(decode(w)["id"]).To(Equal("3"))
	})

	It("requires keywords", func() {
		router := newRouter()
		router.POST("/me/alerts", as(userPrincipal), handler.NewJobAlertHandler(&mockJobAlertService{}).Create)

		w := perform(router, http.MethodPost, "/me/alerts", map[string]any{"frequency": "daily"})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("SavedJobHandler", func() {
	It("saves by string job id", func() {
		var gotJob int64
		svc := &mockSavedJobService{
			saveFn: func(_ context.Context, _, jobID int64) error {
				gotJob = jobID
				return nil
			},
		}
		router := newRouter()
		router.POST("/me/saved-jobs", as(userPrincipal), handler.NewSavedJobHandler(svc).Save)

		w := perform(router, http.MethodPost, "/me/saved-jobs", `{"job_id":"123"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotJob).To(Equal(int64(123)))
	})

	It("returns 404 when unsaving a job that was never saved", func() {
		svc := &mockSavedJobService{
			unsaveFn: func(context.Context, int64, int64) error {
				return service.ErrNotFound
			},
		}
		router := newRouter()
		router.DELETE("/me/saved-jobs/:jobId", as(userPrincipal), handler.NewSavedJobHandler(svc).Unsave)

		w := perform(router, http.MethodDelete, "/me/saved-jobs/123", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
