package model

import "time"

type Company struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	Size        *string   `json:"size,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
