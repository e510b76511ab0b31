package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type accountStore struct {
	queries *sqlc.Queries
}

func newAccountStore(queries *sqlc.Queries) AccountStore {
	return &accountStore{queries: queries}
}

func (s *accountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	row, err := s.queries.GetAccount(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAccountModel(row), nil
}

func (s *accountStore) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	row, err := s.queries.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAccountModel(row), nil
}

func (s *accountStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.Account, error) {
	row, err := s.queries.GetAccountByWorkOSID(ctx, &workosID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toAccountModel(row), nil
}

func (s *accountStore) Create(ctx context.Context, account *model.Account) error {
	row, err := s.queries.CreateAccount(ctx, sqlc.CreateAccountParams{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		PasswordHash: account.PasswordHash,
		WorkosID:     account.WorkOSID,
		Role:         enumPtr[model.Role, string](account.Role),
	})
	if err != nil {
		return mapErr(err)
	}
	*account = *toAccountModel(row)
	return nil
}

func (s *accountStore) LinkWorkOS(ctx context.Context, id int64, workosID string) (*model.Account, error) {
	row, err := s.queries.LinkAccountWorkOS(ctx, sqlc.LinkAccountWorkOSParams{
		ID:       id,
		WorkosID: &workosID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toAccountModel(row), nil
}

func (s *accountStore) SetRole(ctx context.Context, id int64, role model.Role) (*model.Account, error) {
	r := string(role)
	row, err := s.queries.SetAccountRole(ctx, sqlc.SetAccountRoleParams{
		ID:   id,
		Role: &r,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toAccountModel(row), nil
}

func toAccountModel(row sqlc.Account) *model.Account {
	return &model.Account{
		ID:            row.ID,
		Email:         row.Email,
		Name:          row.Name,
		PasswordHash:  row.PasswordHash,
		WorkOSID:      row.WorkosID,
		Role:          enumPtr[string, model.Role](row.Role),
		RoleChangedAt: tsPtr(row.RoleChangedAt),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
