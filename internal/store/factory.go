package store

import (
	"hirely.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Accounts() AccountStore {
	return newAccountStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Companies() CompanyStore {
	return newCompanyStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Jobs() JobStore {
	return newJobStore(s.queries)
}

func (s *Stores) Applicants() ApplicantStore {
	return newApplicantStore(s.queries)
}

func (s *Stores) Interviews() InterviewStore {
	return newInterviewStore(s.queries)
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.queries)
}

func (s *Stores) Notifications() NotificationStore {
	return newNotificationStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) JobAlerts() JobAlertStore {
	return newJobAlertStore(s.queries)
}

func (s *Stores) SavedJobs() SavedJobStore {
	return newSavedJobStore(s.queries)
}
