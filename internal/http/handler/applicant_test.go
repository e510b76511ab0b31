package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("ApplicantHandler", func() {
	var (
		router *gin.Engine
		svc    *mockApplicantService
	)

	BeforeEach(func() {
		router = newRouter()
		svc = &mockApplicantService{}
		h := handler.NewApplicantHandler(svc)

		router.POST("/jobs/:id/apply", as(userPrincipal), h.Apply)
		router.GET("/me/applications", as(userPrincipal), h.ListMine)
		company := router.Group("/company", as(companyPrincipal))
		company.GET("/applicants", h.List)
		company.GET("/applicants/:id", h.Get)
		company.PATCH("/applicants/:id", h.UpdateStatus)
	})

	Describe("Apply", func() {
		It("accepts an empty body", func() {
			svc.applyFn = func(_ context.Context, userID, jobID int64, in service.ApplyInput) (*model.Applicant, error) {
				Expect(userID).To(Equal(userPrincipal.ID))
				Expect(jobID).To(Equal(int64(42)))
				Expect(in.Source).To(BeNil())
				return &model.Applicant{ID: 1, JobID: jobID, UserID: userID, Status: model.ApplicantStatusNew, Source: "direct"}, nil
			}

			w := perform(router, http.MethodPost, "/jobs/42/apply", nil)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decode(w)["status"]).To(Equal("new"))
		})

		It("passes the source and cover letter", func() {
			var got service.ApplyInput
			svc.applyFn = func(_ context.Context, _, jobID int64, in service.ApplyInput) (*model.Applicant, error) {
				got = in
				return &model.Applicant{ID: 1, JobID: jobID}, nil
			}

			w := perform(router, http.MethodPost, "/jobs/42/apply", map[string]any{
				"source": "LinkedIn", "cover_letter": "Hello",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(*got.Source).To(Equal("LinkedIn"))
			Expect(*got.CoverLetter).To(Equal("Hello"))
		})

		It("returns 409 on a second application", func() {
			svc.applyFn = func(context.Context, int64, int64, service.ApplyInput) (*model.Applicant, error) {
				return nil, service.ErrConflict
			}

			w := perform(router, http.MethodPost, "/jobs/42/apply", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["code"]).To(Equal("conflict"))
		})

		It("returns 404 for a closed job", func() {
			svc.applyFn = func(context.Context, int64, int64, service.ApplyInput) (*model.Applicant, error) {
				return nil, service.ErrNotFound
			}

			w := perform(router, http.MethodPost, "/jobs/42/apply", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	It("filters applicants by job and status", func() {
		var got model.ApplicantFilter
		svc.listForCompanyFn = func(_ context.Context, _ int64, f model.ApplicantFilter) ([]model.Applicant, error) {
			got = f
			return nil, nil
		}

		w := perform(router, http.MethodGet, "/company/applicants?job_id=3&status=offer", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*got.JobID).To(Equal(int64(3)))
		Expect(*got.Status).To(Equal(model.ApplicantStatusOffer))
		Expect(decode(w)["applicants"]).To(BeEmpty())
	})

	It("rejects an unknown status filter", func() {
		w := perform(router, http.MethodGet, "/company/applicants?status=hired", nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("updates the status", func() {
		svc.updateStatusFn = func(_ context.Context, companyID, applicantID int64, status model.ApplicantStatus) (*model.Applicant, error) {
			Expect(companyID).To(Equal(companyPrincipal.ID))
			return &model.Applicant{ID: applicantID, Status: status}, nil
		}

		w := perform(router, http.MethodPatch, "/company/applicants/8", map[string]any{"status": "reviewing"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["status"]).To(Equal("reviewing"))
	})

	It("lists the seeker's own applications", func() {
		svc.listForUserFn = func(_ context.Context, userID int64) ([]model.Applicant, error) {
			return []model.Applicant{{ID: 1, UserID: userID, JobTitle: "Go Engineer", CompanyName: "Acme"}}, nil
		}

		w := perform(router, http.MethodGet, "/me/applications", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		apps := decode(w)["applications"].([]any)
		Expect(apps[0].(map[string]any)["company_name"]).To(Equal("Acme"))
	})
})
