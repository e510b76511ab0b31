package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/store"
)

var _ = Describe("CompanyService", func() {
	var (
		ctx       context.Context
		companies *mockCompanyStore
		jobs      *mockJobStore
		svc       service.CompanyService
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{}
		jobs = &mockJobStore{}
		svc = service.NewCompanyService(companies, jobs)
	})

	It("returns the public profile with its open jobs", func() {
		logo := "https://cdn/logo.png"
		companies.getBySlugFn = func(_ context.Context, slug string) (*model.Company, error) {
			Expect(slug).To(Equal("acme"))
			return &model.Company{ID: 3, Name: "Acme", Slug: "acme", LogoURL: &logo}, nil
		}
		jobs.listOpenByCompanyFn = func(context.Context, int64) ([]model.Job, error) {
			return []model.Job{{ID: 1, Title: "Engineer"}}, nil
		}
		company, list, err := svc.GetPublic(ctx, "ACME")
		Expect(err).NotTo(HaveOccurred())
		Expect(company.Name).To(Equal("Acme"))
		Expect(list).To(HaveLen(1))
		Expect(list[0].CompanySlug).To(Equal("acme"))
		Expect(list[0].CompanyLogoURL).To(Equal(&logo))
	})

	It("returns NotFound for an unknown slug", func() {
		companies.getBySlugFn = func(context.Context, string) (*model.Company, error) {
			return nil, store.ErrNotFound
		}
		_, _, err := svc.GetPublic(ctx, "nope")
		Expect(err).To(MatchError(service.ErrNotFound))
	})

	It("clears optional fields patched with an empty string", func() {
		companies.getByIDFn = func(context.Context, int64) (*model.Company, error) {
			return &model.Company{ID: 3, Name: "Acme", Website: strPtr("https://acme.io")}, nil
		}
		var saved *model.Company
		companies.updateFn = func(_ context.Context, c *model.Company) error {
			saved = c
			return nil
		}
		_, err := svc.Update(ctx, 3, service.CompanyPatch{Website: strPtr(""), Industry: strPtr(" Fintech ")})
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.Website).To(BeNil())
		Expect(*saved.Industry).To(Equal("Fintech"))
		Expect(saved.Name).To(Equal("Acme"))
	})

	It("refuses to blank the name", func() {
		companies.getByIDFn = func(context.Context, int64) (*model.Company, error) {
			return &model.Company{ID: 3, Name: "Acme"}, nil
		}
		_, err := svc.Update(ctx, 3, service.CompanyPatch{Name: strPtr("  ")})
		Expect(err).To(MatchError(service.ErrValidation))
	})
})

