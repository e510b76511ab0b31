package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("ExportService", func() {
	var (
		ctx        context.Context
		svc        service.ExportService
		companies  *mockCompanyStore
		jobs       *mockJobStore
		applicants *mockApplicantStore
		now        = time.Date(2024, 5, 2, 18, 30, 0, 0, time.UTC)
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{
			getByIDFn: func(_ context.Context, companyID int64) (*model.Company, error) {
				return &model.Company{ID: companyID, Slug: "acme"}, nil
			},
		}
		jobs = &mockJobStore{}
		applicants = &mockApplicantStore{}
		svc = service.NewExportService(companies, jobs, applicants)
	})

	It("exports jobs with a bare header and quoted values", func() {
		jobs.listByCompanyFn = func(context.Context, int64) ([]model.Job, error) {
			return []model.Job{{
				Title:          `Senior "Go" Engineer`,
				Location:       strPtr("Berlin, DE"),
				EmploymentType: model.EmploymentFullTime,
				Status:         model.JobStatusOpen,
				Applicants:     12,
				CreatedAt:      time.Date(2024, 4, 1, 23, 59, 0, 0, time.UTC),
			}}, nil
		}

		out, err := svc.Export(ctx, 3, service.ExportJobs, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Filename).To(Equal("acme-jobs-2024-05-02.csv"))

		lines := strings.Split(strings.TrimSuffix(string(out.Body), "\n"), "\n")
		Expect(lines).To(Equal([]string{
			"Title,Location,Type,Status,Applicants,Created",
			`"Senior ""Go"" Engineer","Berlin, DE","full_time","open","12","2024-04-01"`,
		}))
	})

	It("exports applicants", func() {
		applicants.listForCompanyFn = func(_ context.Context, _ int64, f model.ApplicantFilter) ([]model.Applicant, error) {
			Expect(f.JobID).To(BeNil())
			return []model.Applicant{{
				UserName:  "Grace Hopper",
				UserEmail: "grace@example.com",
				JobTitle:  "Engineer",
				Status:    model.ApplicantStatusReviewing,
				Source:    "linkedin",
				AppliedAt: time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC),
			}}, nil
		}

		out, err := svc.Export(ctx, 3, service.ExportApplicants, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Filename).To(Equal("acme-applicants-2024-05-02.csv"))
		Expect(string(out.Body)).To(Equal(
			"Name,Email,Job,Status,Source,Applied\n" +
				`"Grace Hopper","grace@example.com","Engineer","reviewing","linkedin","2024-04-20"` + "\n",
		))
	})

	It("rejects unknown export types", func() {
		_, err := svc.Export(ctx, 3, service.ExportKind("interviews"), now)
		Expect(errors.Is(err, service.ErrValidation)).To(BeTrue())
	})

	It("writes an empty location as an empty quoted value", func() {
		Expect(service.EncodeCSV([]string{"A", "B"}, [][]string{{"", "x"}})).To(Equal("A,B\n\"\",\"x\"\n"))
	})
})
