package dto

import (
	"time"

	"hirely.app/api/internal/model"
)

type SignupRequest struct {
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Name     string      `json:"name" binding:"required,min=1,max=255"`
	Role     *model.Role `json:"role,omitempty" binding:"omitempty,oneof=company user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SelectRoleRequest struct {
	Role model.Role `json:"role" binding:"required,oneof=company user"`
}

type ExchangeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type PrincipalResponse struct {
	ID        *int64     `json:"id,omitempty,string"`
	AccountID int64      `json:"account_id,string"`
	Role      model.Role `json:"role,omitempty"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
}

// ToPrincipalResponse omits the profile id while no role is chosen.
func ToPrincipalResponse(p model.Principal) PrincipalResponse {
	resp := PrincipalResponse{
		AccountID: p.AccountID,
		Role:      p.Role,
		Email:     p.Email,
		Name:      p.Name,
	}
	if p.Role != "" {
		id := p.ID
		resp.ID = &id
	}
	return resp
}

type SessionResponse struct {
	Principal PrincipalResponse `json:"principal"`
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type MeResponse struct {
	Principal     PrincipalResponse `json:"principal"`
	CanChangeRole bool              `json:"can_change_role"`
}
