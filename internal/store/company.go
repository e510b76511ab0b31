package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type companyStore struct {
	queries *sqlc.Queries
}

func newCompanyStore(queries *sqlc.Queries) CompanyStore {
	return &companyStore{queries: queries}
}

func (s *companyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	row, err := s.queries.GetCompany(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	row, err := s.queries.GetCompanyByEmail(ctx, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	row, err := s.queries.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, mapErr(err)
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) Create(ctx context.Context, company *model.Company) error {
	row, err := s.queries.CreateCompany(ctx, sqlc.CreateCompanyParams{
		ID:        company.ID,
		AccountID: company.AccountID,
		Email:     company.Email,
		Name:      company.Name,
		Slug:      company.Slug,
	})
	if err != nil {
		return mapErr(err)
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) Update(ctx context.Context, company *model.Company) error {
	row, err := s.queries.UpdateCompany(ctx, sqlc.UpdateCompanyParams{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		Website:     company.Website,
		Location:    company.Location,
		Industry:    company.Industry,
		Size:        company.Size,
		LogoUrl:     company.LogoURL,
	})
	if err != nil {
		return mapErr(err)
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	return s.queries.DeleteCompanyByAccount(ctx, accountID)
}

func toCompanyModel(row sqlc.Company) *model.Company {
	return &model.Company{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Email:       row.Email,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Website:     row.Website,
		Location:    row.Location,
		Industry:    row.Industry,
		Size:        row.Size,
		LogoURL:     row.LogoUrl,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
