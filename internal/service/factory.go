package service

import (
	"hirely.app/api/core/config"
	"hirely.app/api/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	cfg       config.Config
	publisher NotificationPublisher
	storage   ObjectStorage
}

// NewServices wires services over stores. publisher and storage are optional
// and may be nil.
func NewServices(stores *store.Stores, txRunner TxRunner, cfg config.Config, publisher NotificationPublisher, storage ObjectStorage) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		cfg:       cfg,
		publisher: publisher,
		storage:   storage,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Accounts(),
		s.stores.Sessions(),
		s.stores.Companies(),
		s.stores.Users(),
		s.txRunner,
		s.cfg.Session,
		s.cfg.WorkOS,
	)
}

func (s *Services) Companies() CompanyService {
	return NewCompanyService(s.stores.Companies(), s.stores.Jobs())
}

func (s *Services) Profiles() ProfileService {
	return NewProfileService(s.stores.Users())
}

func (s *Services) Jobs() JobService {
	return NewJobService(s.stores.Jobs(), s.stores.Activities())
}

func (s *Services) Applicants() ApplicantService {
	return NewApplicantService(
		s.stores.Jobs(),
		s.stores.Applicants(),
		s.stores.Users(),
		s.stores.Activities(),
		s.Notifications(),
		s.txRunner,
	)
}

func (s *Services) Interviews() InterviewService {
	return NewInterviewService(
		s.stores.Interviews(),
		s.stores.Applicants(),
		s.stores.Activities(),
		s.Notifications(),
		s.txRunner,
	)
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(
		s.stores.Conversations(),
		s.stores.Messages(),
		s.stores.Companies(),
		s.stores.Users(),
		s.stores.Jobs(),
		s.Notifications(),
		s.txRunner,
	)
}

func (s *Services) Notifications() NotificationService {
	return NewNotificationService(s.stores.Notifications(), s.publisher)
}

func (s *Services) Dashboard() DashboardService {
	return NewDashboardService(
		s.stores.Jobs(),
		s.stores.Applicants(),
		s.stores.Interviews(),
		s.stores.Conversations(),
		s.stores.Activities(),
		s.stores.SavedJobs(),
	)
}

func (s *Services) Export() ExportService {
	return NewExportService(s.stores.Companies(), s.stores.Jobs(), s.stores.Applicants())
}

func (s *Services) Uploads() UploadService {
	return NewUploadService(s.storage)
}

func (s *Services) JobAlerts() JobAlertService {
	return NewJobAlertService(s.stores.JobAlerts())
}

func (s *Services) SavedJobs() SavedJobService {
	return NewSavedJobService(s.stores.SavedJobs(), s.stores.Jobs())
}
