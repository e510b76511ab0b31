package store

import (
	"context"
	"errors"
	"time"

	"hirely.app/api/internal/model"
)

var (
	// ErrNotFound is returned when a row does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert hits a unique constraint.
	ErrConflict = errors.New("conflict")
)

// AccountStore defines the contract for account data access
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) error
	LinkWorkOS(ctx context.Context, id int64, workosID string) (*model.Account, error)
	// SetRole returns ErrNotFound once the one allowed role change is spent.
	SetRole(ctx context.Context, id int64, role model.Role) (*model.Account, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Delete(ctx context.Context, id int64) error
	DeleteByAccount(ctx context.Context, accountID int64) error
	DeleteExpired(ctx context.Context) error
}

// CompanyStore defines the contract for company profile data access
type CompanyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
	GetBySlug(ctx context.Context, slug string) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	DeleteByAccount(ctx context.Context, accountID int64) error
}

// UserStore defines the contract for job seeker profile data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	DeleteByAccount(ctx context.Context, accountID int64) error
}

// JobStore defines the contract for job data access.
// Methods taking a companyID only touch rows that company owns.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	GetForCompany(ctx context.Context, id, companyID int64) (*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id, companyID int64) error
	ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error)
	ListOpen(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	ListOpenByCompany(ctx context.Context, companyID int64) ([]model.Job, error)
	IncrementApplicants(ctx context.Context, id int64) error
	CountByCompany(ctx context.Context, companyID int64) (model.JobCounts, error)
}

// ApplicantStore defines the contract for applicant data access
type ApplicantStore interface {
	Create(ctx context.Context, applicant *model.Applicant) error
	GetForCompany(ctx context.Context, id, companyID int64) (*model.Applicant, error)
	ListForCompany(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error)
	UpdateStatusForCompany(ctx context.Context, id, companyID int64, status model.ApplicantStatus) (*model.Applicant, error)
	UpdateStatus(ctx context.Context, id int64, status model.ApplicantStatus) error
	ListByUser(ctx context.Context, userID int64) ([]model.Applicant, error)
	ListAppliedSince(ctx context.Context, companyID int64, since time.Time) ([]time.Time, error)
	ListSources(ctx context.Context, companyID int64) ([]string, error)
	CountByCompany(ctx context.Context, companyID int64) (model.ApplicantCounts, error)
	CountByUserStatus(ctx context.Context, userID int64) (map[model.ApplicantStatus]int64, error)
}

// InterviewStore defines the contract for interview data access
type InterviewStore interface {
	Create(ctx context.Context, interview *model.Interview) error
	GetForCompany(ctx context.Context, id, companyID int64) (*model.Interview, error)
	Update(ctx context.Context, interview *model.Interview) error
	Delete(ctx context.Context, id, companyID int64) error
	ListForCompany(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Interview, error)
	CountUpcomingForCompany(ctx context.Context, companyID int64) (int64, error)
	CountUpcomingForUser(ctx context.Context, userID int64) (int64, error)
}

// ConversationStore defines the contract for conversation data access
type ConversationStore interface {
	// Upsert returns the existing row for (CompanyID, UserID) or creates it.
	Upsert(ctx context.Context, conv *model.Conversation) error
	GetForPrincipal(ctx context.Context, id int64, p model.Principal) (*model.Conversation, error)
	Touch(ctx context.Context, id int64) error
	ListForPrincipal(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error)
	CountUnread(ctx context.Context, p model.Principal) (int64, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
	MarkRead(ctx context.Context, conversationID int64, sender model.Role) (int64, error)
}

// NotificationStore defines the contract for notification data access
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, role model.Role, ownerID int64, unreadOnly bool, limit int32) ([]model.Notification, error)
	MarkRead(ctx context.Context, id int64, role model.Role, ownerID int64) error
	MarkAllRead(ctx context.Context, role model.Role, ownerID int64) (int64, error)
}

// ActivityStore defines the contract for activity feed data access
type ActivityStore interface {
	Create(ctx context.Context, a *model.Activity) error
	ListForCompany(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error)
}

// JobAlertStore defines the contract for job alert data access
type JobAlertStore interface {
	Create(ctx context.Context, alert *model.JobAlert) error
	GetForUser(ctx context.Context, id, userID int64) (*model.JobAlert, error)
	Update(ctx context.Context, alert *model.JobAlert) error
	Delete(ctx context.Context, id, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.JobAlert, error)
}

// SavedJobStore defines the contract for saved job data access
type SavedJobStore interface {
	Save(ctx context.Context, userID, jobID int64) error
	Unsave(ctx context.Context, userID, jobID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.SavedJob, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
