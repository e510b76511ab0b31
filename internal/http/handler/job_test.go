package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("JobHandler", func() {
	var (
		router *gin.Engine
		svc    *mockJobService
	)

	BeforeEach(func() {
		router = newRouter()
		svc = &mockJobService{}
		h := handler.NewJobHandler(svc)

		router.GET("/jobs", h.List)
		router.GET("/jobs/:id", h.Get)
		company := router.Group("/company", as(companyPrincipal))
		company.GET("/jobs", h.ListMine)
		company.POST("/jobs", h.Create)
		company.PATCH("/jobs/:id", h.Update)
		company.DELETE("/jobs/:id", h.Delete)
	})

	It("passes the search filters through to the service", func() {
		var got model.JobFilter
		svc.listFn = func(_ context.Context, f model.JobFilter) ([]model.Job, error) {
			got = f
			return []model.Job{{ID: 7, Title: "Go Engineer", Status: model.JobStatusOpen}}, nil
		}

		w := perform(router, http.MethodGet, "/jobs?q=go&type=contract&remote=true&limit=5&offset=10", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*got.Query).To(Equal("go"))
		Expect(*got.EmploymentType).To(Equal(model.EmploymentContract))
		Expect(*got.Remote).To(BeTrue())
		Expect(got.Limit).To(Equal(int32(5)))
		Expect(got.Offset).To(Equal(int32(10)))

		jobs := decode(w)["jobs"].([]any)
		Expect(jobs).To(HaveLen(1))
		Expect(jobs[0].(map[string]any)["id"]).To(Equal("7"))
	})

	It("rejects a page size above the cap", func() {
		w := perform(router, http.MethodGet, "/jobs?limit=500", nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for a draft or missing job", func() {
		svc.getFn = func(context.Context, int64) (*model.Job, error) {
			return nil, service.ErrNotFound
		}

		w := perform(router, http.MethodGet, "/jobs/99", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 for a non-numeric id", func() {
		w := perform(router, http.MethodGet, "/jobs/abc", nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)["field"]).To(Equal("id"))
	})

	It("creates a job for the signed-in company", func() {
		var gotCompany int64
		var got service.JobInput
		svc.createFn = func(_ context.Context, companyID int64, in service.JobInput) (*model.Job, error) {
			gotCompany, got = companyID, in
			return &model.Job{ID: 1, CompanyID: companyID, Title: in.Title, Status: model.JobStatusOpen}, nil
		}

		w := perform(router, http.MethodPost, "/company/jobs", map[string]any{
			"title": "Backend Engineer", "salary_min": 100, "salary_max": 200, "remote": true,
		})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(gotCompany).To(Equal(companyPrincipal.ID))
		Expect(got.Title).To(Equal("Backend Engineer"))
		Expect(*got.SalaryMax).To(Equal(int32(200)))
		Expect(got.Remote).To(BeTrue())
	})

	It("surfaces the offending field on validation errors", func() {
		svc.createFn = func(context.Context, int64, service.JobInput) (*model.Job, error) {
			return nil, &service.ValidationError{Field: "salary_max", Message: "must be greater than or equal to salary_min"}
		}

		w := perform(router, http.MethodPost, "/company/jobs", map[string]any{
			"title": "Backend Engineer", "salary_min": 300, "salary_max": 200,
		})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		resp := decode(w)
		Expect(resp["field"]).To(Equal("salary_max"))
		Expect(resp["code"]).To(Equal("validation"))
	})

	It("returns 404 when updating another company's job", func() {
		svc.updateFn = func(context.Context, int64, int64, service.JobPatch) (*model.Job, error) {
			return nil, service.ErrNotFound
		}

		w := perform(router, http.MethodPatch, "/company/jobs/5", map[string]any{"status": "closed"})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("deletes with 204", func() {
		var gotJob int64
		svc.deleteFn = func(_ context.Context, _, jobID int64) error {
			gotJob = jobID
			return nil
		}

		w := perform(router, http.MethodDelete, "/company/jobs/5", nil)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(gotJob).To(Equal(int64(5)))
	})

	It("hides internal error details", func() {
		svc.listForCompanyFn = func(context.Context, int64) ([]model.Job, error) {
			return nil, errors.New("listing company jobs: connection refused")
		}

		w := perform(router, http.MethodGet, "/company/jobs", nil)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
	})
})
