package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=10000"`
	Website     *string `json:"website,omitempty" binding:"omitempty,max=2048"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=255"`
	Industry    *string `json:"industry,omitempty" binding:"omitempty,max=255"`
	Size        *string `json:"size,omitempty" binding:"omitempty,max=64"`
	LogoURL     *string `json:"logo_url,omitempty" binding:"omitempty,max=2048"`
}

type CompanyResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Email       string    `json:"email,omitempty"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	Size        *string   `json:"size,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCompanyResponse(c *model.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Email:       c.Email,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Industry:    c.Industry,
		Size:        c.Size,
		LogoURL:     c.LogoURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type PublicCompanyResponse struct {
	Company *CompanyResponse `json:"company"`
	Jobs    []JobResponse    `json:"jobs"`
}

// ToPublicCompanyResponse hides the contact email.
func ToPublicCompanyResponse(c *model.Company, jobs []model.Job) PublicCompanyResponse {
	company := ToCompanyResponse(c)
	company.Email = ""
	return PublicCompanyResponse{Company: company, Jobs: ToJobResponses(jobs)}
}

type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Headline  *string  `json:"headline,omitempty" binding:"omitempty,max=255"`
	Location  *string  `json:"location,omitempty" binding:"omitempty,max=255"`
	Bio       *string  `json:"bio,omitempty" binding:"omitempty,max=10000"`
	Skills    []string `json:"skills,omitempty" binding:"omitempty,max=50,dive,max=64"`
	ResumeURL *string  `json:"resume_url,omitempty" binding:"omitempty,max=2048"`
	AvatarURL *string  `json:"avatar_url,omitempty" binding:"omitempty,max=2048"`
}

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Headline  *string   `json:"headline,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    []string  `json:"skills"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileResponse(u *model.User) *ProfileResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return &ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Headline:  u.Headline,
		Location:  u.Location,
		Bio:       u.Bio,
		Skills:    skills,
		ResumeURL: u.ResumeURL,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
