package model

import "time"

// Account holds credentials. The profile lives in Company or User depending on Role.
type Account struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	PasswordHash  *string    `json:"-"`
	WorkOSID      *string    `json:"-"`
	Role          *Role      `json:"role,omitempty"`
	RoleChangedAt *time.Time `json:"role_changed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CanChangeRole reports whether a role selection is still allowed. Picking the
// first role is free; switching afterwards is allowed once.
func (a *Account) CanChangeRole() bool {
	return a.Role == nil || a.RoleChangedAt == nil
}
