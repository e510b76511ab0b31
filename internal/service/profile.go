package service

import (
	"context"
	"strings"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const maxSkills = 50

type ProfilePatch struct {
	Name      *string
	Headline  *string
	Location  *string
	Bio       *string
	Skills    []string // nil leaves skills unchanged
	ResumeURL *string
	AvatarURL *string
}

// ProfileService manages the job seeker profile.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	Update(ctx context.Context, userID int64, patch ProfilePatch) (*model.User, error)
}

type profileService struct {
	users store.UserStore
}

func NewProfileService(users store.UserStore) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "getting user")
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID int64, patch ProfilePatch) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name", "is required")
		}
		user.Name = name
	}
	user.Headline = patchText(user.Headline, patch.Headline)
	user.Location = patchText(user.Location, patch.Location)
	user.Bio = patchText(user.Bio, patch.Bio)
	user.ResumeURL = patchText(user.ResumeURL, patch.ResumeURL)
	user.AvatarURL = patchText(user.AvatarURL, patch.AvatarURL)
	if patch.Skills != nil {
		skills := normalizeSkills(patch.Skills)
		if len(skills) > maxSkills {
			return nil, invalid("skills", "too many skills")
		}
		user.Skills = skills
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeErr(err, "updating user")
	}
	return user, nil
}

// normalizeSkills trims entries and drops blanks and case-insensitive duplicates.
func normalizeSkills(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, skill := range in {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
