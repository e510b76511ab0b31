package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hirely.app/api/common"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const maxSlugAttempts = 20

type CompanyPatch struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Industry    *string
	Size        *string
	LogoURL     *string
}

type CompanyService interface {
	Get(ctx context.Context, companyID int64) (*model.Company, error)
	Update(ctx context.Context, companyID int64, patch CompanyPatch) (*model.Company, error)
	// GetPublic returns the profile behind slug with its open jobs.
	GetPublic(ctx context.Context, slug string) (*model.Company, []model.Job, error)
}

type companyService struct {
	companies store.CompanyStore
	jobs      store.JobStore
}

func NewCompanyService(companies store.CompanyStore, jobs store.JobStore) CompanyService {
	return &companyService{companies: companies, jobs: jobs}
}

func (s *companyService) Get(ctx context.Context, companyID int64) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, storeErr(err, "getting company")
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, companyID int64, patch CompanyPatch) (*model.Company, error) {
	company, err := s.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name", "is required")
		}
		company.Name = name
	}
	company.Description = patchText(company.Description, patch.Description)
	company.Website = patchText(company.Website, patch.Website)
	company.Location = patchText(company.Location, patch.Location)
	company.Industry = patchText(company.Industry, patch.Industry)
	company.Size = patchText(company.Size, patch.Size)
	company.LogoURL = patchText(company.LogoURL, patch.LogoURL)

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, storeErr(err, "updating company")
	}
	return company, nil
}

func (s *companyService) GetPublic(ctx context.Context, slug string) (*model.Company, []model.Job, error) {
	company, err := s.companies.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, nil, storeErr(err, "getting company")
	}
	jobs, err := s.jobs.ListOpenByCompany(ctx, company.ID)
	if err != nil {
		return nil, nil, storeErr(err, "listing company jobs")
	}
	for i := range jobs {
		jobs[i].CompanyName = company.Name
		jobs[i].CompanySlug = company.Slug
		jobs[i].CompanyLogoURL = company.LogoURL
	}
	return company, jobs, nil
}

// uniqueCompanySlug slugifies name and probes name, name-2, ... until free.
func uniqueCompanySlug(ctx context.Context, companies store.CompanyStore, name string) (string, error) {
	base, err := common.Slugify(name, "company")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := common.SlugCandidate(base, attempt)
		_, err := companies.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

// patchText applies an optional text patch. An empty string clears the field.
func patchText(current, patch *string) *string {
	if patch == nil {
		return current
	}
	v := strings.TrimSpace(*patch)
	if v == "" {
		return nil
	}
	return &v
}
