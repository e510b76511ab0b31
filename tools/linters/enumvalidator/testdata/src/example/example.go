package example

type Role string

const (
	RoleCompany Role = "company"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool { return r == RoleCompany || r == RoleUser }

type ApplicantStatus string

const (
	ApplicantStatusNew      ApplicantStatus = "new"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

func (s ApplicantStatus) Valid() bool {
	return s == ApplicantStatusNew || s == ApplicantStatusRejected
}

// Label has no Valid method, so it is free text.
type Label string

type Account struct {
	Role *Role
}

type Applicant struct {
	Status ApplicantStatus
	Source string
	Label  Label
}

func bad() {
	a := &Applicant{}
	a.Status = "hired" // want "enum field Status assigned string literal"

	_ = Applicant{Status: "offer"} // want "enum field Status assigned string literal"
}

func good() {
	a := &Applicant{Status: ApplicantStatusNew, Source: "direct", Label: "vip"}
	a.Status = ApplicantStatusRejected // OK: using constant
	a.Source = "referral"              // OK: plain string field
	a.Label = "priority"               // OK: no Valid method

	role := RoleUser
	acc := &Account{Role: &role}
	_ = acc

	counts := map[string]int{"new": 1}
	_ = counts
}
