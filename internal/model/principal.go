package model

// Role is the side of the marketplace an account acts for.
type Role string

const (
	RoleCompany Role = "company"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleCompany || r == RoleUser
}

// Other returns the opposite side of a conversation.
func (r Role) Other() Role {
	if r == RoleCompany {
		return RoleUser
	}
	return RoleCompany
}

// Principal is the resolved actor of a request. ID is the Company or User id
// for the role. Role is empty until the account picks one.
type Principal struct {
	ID        int64  `json:"id"`
	Role      Role   `json:"role"`
	AccountID int64  `json:"account_id"`
	SessionID int64  `json:"-"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

func (p Principal) IsCompany() bool { return p.Role == RoleCompany }
func (p Principal) IsUser() bool    { return p.Role == RoleUser }
