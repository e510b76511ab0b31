package store

import (
	"context"

	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:        user.ID,
		AccountID: user.AccountID,
		Email:     user.Email,
		Name:      user.Name,
	})
	if err != nil {
		return mapErr(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	row, err := s.queries.UpdateUser(ctx, sqlc.UpdateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		Headline:  user.Headline,
		Location:  user.Location,
		Bio:       user.Bio,
		Skills:    skills,
		ResumeUrl: user.ResumeURL,
		AvatarUrl: user.AvatarURL,
	})
	if err != nil {
		return mapErr(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	return s.queries.DeleteUserByAccount(ctx, accountID)
}

func toUserModel(row sqlc.User) *model.User {
	skills := row.Skills
	if skills == nil {
		skills = []string{}
	}
	return &model.User{
		ID:        row.ID,
		AccountID: row.AccountID,
		Email:     row.Email,
		Name:      row.Name,
		Headline:  row.Headline,
		Location:  row.Location,
		Bio:       row.Bio,
		Skills:    skills,
		ResumeURL: row.ResumeUrl,
		AvatarURL: row.AvatarUrl,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
