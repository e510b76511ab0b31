package service_test

import (
	"context"
	"time"

	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/store"
)

type mockAccountStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Account, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.Account, error)
	getByWorkOSIDFn func(ctx context.Context, workosID string) (*model.Account, error)
	createFn        func(ctx context.Context, account *model.Account) error
	linkWorkOSFn    func(ctx context.Context, id int64, workosID string) (*model.Account, error)
	setRoleFn       func(ctx context.Context, id int64, role model.Role) (*model.Account, error)
}

func (m *mockAccountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.Account, error) {
	if m.getByWorkOSIDFn != nil {
		return m.getByWorkOSIDFn(ctx, workosID)
	}
	return nil, nil
}

func (m *mockAccountStore) Create(ctx context.Context, account *model.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return nil
}

func (m *mockAccountStore) LinkWorkOS(ctx context.Context, id int64, workosID string) (*model.Account, error) {
	if m.linkWorkOSFn != nil {
		return m.linkWorkOSFn(ctx, id, workosID)
	}
	return nil, nil
}

func (m *mockAccountStore) SetRole(ctx context.Context, id int64, role model.Role) (*model.Account, error) {
	if m.setRoleFn != nil {
		return m.setRoleFn(ctx, id, role)
	}
	return nil, nil
}

type mockSessionStore struct {
	createFn          func(ctx context.Context, session *model.Session) error
	getValidFn        func(ctx context.Context, id int64) (*model.Session, error)
	deleteFn          func(ctx context.Context, id int64) error
	deleteByAccountFn func(ctx context.Context, accountID int64) error
	deleteExpiredFn   func(ctx context.Context) error
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	if m.deleteByAccountFn != nil {
		return m.deleteByAccountFn(ctx, accountID)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

type mockCompanyStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.Company, error)
	getByEmailFn      func(ctx context.Context, email string) (*model.Company, error)
	getBySlugFn       func(ctx context.Context, slug string) (*model.Company, error)
	createFn          func(ctx context.Context, company *model.Company) error
	updateFn          func(ctx context.Context, company *model.Company) error
	deleteByAccountFn func(ctx context.Context, accountID int64) error
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyStore) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockCompanyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockCompanyStore) Create(ctx context.Context, company *model.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) Update(ctx context.Context, company *model.Company) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, company)
	}
	return nil
}

func (m *mockCompanyStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	if m.deleteByAccountFn != nil {
		return m.deleteByAccountFn(ctx, accountID)
	}
	return nil
}

type mockUserStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn      func(ctx context.Context, email string) (*model.User, error)
	createFn          func(ctx context.Context, user *model.User) error
	updateFn          func(ctx context.Context, user *model.User) error
	deleteByAccountFn func(ctx context.Context, accountID int64) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	if m.deleteByAccountFn != nil {
		return m.deleteByAccountFn(ctx, accountID)
	}
	return nil
}

type mockJobStore struct {
	createFn              func(ctx context.Context, job *model.Job) error
	getByIDFn             func(ctx context.Context, id int64) (*model.Job, error)
	getForCompanyFn       func(ctx context.Context, id, companyID int64) (*model.Job, error)
	updateFn              func(ctx context.Context, job *model.Job) error
	deleteFn              func(ctx context.Context, id, companyID int64) error
	listByCompanyFn       func(ctx context.Context, companyID int64) ([]model.Job, error)
	listOpenFn            func(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	listOpenByCompanyFn   func(ctx context.Context, companyID int64) ([]model.Job, error)
	incrementApplicantsFn func(ctx context.Context, id int64) error
	countByCompanyFn      func(ctx context.Context, companyID int64) (model.JobCounts, error)
}

func (m *mockJobStore) Create(ctx context.Context, job *model.Job) error {
	if m.createFn != nil {
		return m.createFn(ctx, job)
	}
	return nil
}

func (m *mockJobStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockJobStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Job, error) {
	if m.getForCompanyFn != nil {
		return m.getForCompanyFn(ctx, id, companyID)
	}
	return nil, nil
}

func (m *mockJobStore) Update(ctx context.Context, job *model.Job) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, job)
	}
	return nil
}

func (m *mockJobStore) Delete(ctx context.Context, id, companyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, companyID)
	}
	return nil
}

func (m *mockJobStore) ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	if m.listByCompanyFn != nil {
		return m.listByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockJobStore) ListOpen(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	if m.listOpenFn != nil {
		return m.listOpenFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockJobStore) ListOpenByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	if m.listOpenByCompanyFn != nil {
		return m.listOpenByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockJobStore) IncrementApplicants(ctx context.Context, id int64) error {
	if m.incrementApplicantsFn != nil {
		return m.incrementApplicantsFn(ctx, id)
	}
	return nil
}

func (m *mockJobStore) CountByCompany(ctx context.Context, companyID int64) (model.JobCounts, error) {
	if m.countByCompanyFn != nil {
		return m.countByCompanyFn(ctx, companyID)
	}
	return model.JobCounts{}, nil
}

type mockApplicantStore struct {
	createFn                 func(ctx context.Context, applicant *model.Applicant) error
	getForCompanyFn          func(ctx context.Context, id, companyID int64) (*model.Applicant, error)
	listForCompanyFn         func(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error)
	updateStatusForCompanyFn func(ctx context.Context, id, companyID int64, status model.ApplicantStatus) (*model.Applicant, error)
	updateStatusFn           func(ctx context.Context, id int64, status model.ApplicantStatus) error
	listByUserFn             func(ctx context.Context, userID int64) ([]model.Applicant, error)
	listAppliedSinceFn       func(ctx context.Context, companyID int64, since time.Time) ([]time.Time, error)
	listSourcesFn            func(ctx context.Context, companyID int64) ([]string, error)
	countByCompanyFn         func(ctx context.Context, companyID int64) (model.ApplicantCounts, error)
	countByUserStatusFn      func(ctx context.Context, userID int64) (map[model.ApplicantStatus]int64, error)
}

func (m *mockApplicantStore) Create(ctx context.Context, applicant *model.Applicant) error {
	if m.createFn != nil {
		return m.createFn(ctx, applicant)
	}
	return nil
}

func (m *mockApplicantStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Applicant, error) {
	if m.getForCompanyFn != nil {
		return m.getForCompanyFn(ctx, id, companyID)
	}
	return nil, nil
}

func (m *mockApplicantStore) ListForCompany(ctx context.Context, companyID int64, filter model.ApplicantFilter) ([]model.Applicant, error) {
	if m.listForCompanyFn != nil {
		return m.listForCompanyFn(ctx, companyID, filter)
	}
	return nil, nil
}

func (m *mockApplicantStore) UpdateStatusForCompany(ctx context.Context, id, companyID int64, status model.ApplicantStatus) (*model.Applicant, error) {
	if m.updateStatusForCompanyFn != nil {
		return m.updateStatusForCompanyFn(ctx, id, companyID, status)
	}
	return nil, nil
}

func (m *mockApplicantStore) UpdateStatus(ctx context.Context, id int64, status model.ApplicantStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockApplicantStore) ListByUser(ctx context.Context, userID int64) ([]model.Applicant, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockApplicantStore) ListAppliedSince(ctx context.Context, companyID int64, since time.Time) ([]time.Time, error) {
	if m.listAppliedSinceFn != nil {
		return m.listAppliedSinceFn(ctx, companyID, since)
	}
	return nil, nil
}

func (m *mockApplicantStore) ListSources(ctx context.Context, companyID int64) ([]string, error) {
	if m.listSourcesFn != nil {
		return m.listSourcesFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockApplicantStore) CountByCompany(ctx context.Context, companyID int64) (model.ApplicantCounts, error) {
	if m.countByCompanyFn != nil {
		return m.countByCompanyFn(ctx, companyID)
	}
	return model.ApplicantCounts{}, nil
}

func (m *mockApplicantStore) CountByUserStatus(ctx context.Context, userID int64) (map[model.ApplicantStatus]int64, error) {
	if m.countByUserStatusFn != nil {
		return m.countByUserStatusFn(ctx, userID)
	}
	return nil, nil
}

type mockInterviewStore struct {
	createFn                  func(ctx context.Context, interview *model.Interview) error
	getForCompanyFn           func(ctx context.Context, id, companyID int64) (*model.Interview, error)
	updateFn                  func(ctx context.Context, interview *model.Interview) error
	deleteFn                  func(ctx context.Context, id, companyID int64) error
	listForCompanyFn          func(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error)
	listForUserFn             func(ctx context.Context, userID int64) ([]model.Interview, error)
	countUpcomingForCompanyFn func(ctx context.Context, companyID int64) (int64, error)
	countUpcomingForUserFn    func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockInterviewStore) Create(ctx context.Context, interview *model.Interview) error {
	if m.createFn != nil {
		return m.createFn(ctx, interview)
	}
	return nil
}

func (m *mockInterviewStore) GetForCompany(ctx context.Context, id, companyID int64) (*model.Interview, error) {
	if m.getForCompanyFn != nil {
		return m.getForCompanyFn(ctx, id, companyID)
	}
	return nil, nil
}

func (m *mockInterviewStore) Update(ctx context.Context, interview *model.Interview) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, interview)
	}
	return nil
}

func (m *mockInterviewStore) Delete(ctx context.Context, id, companyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, companyID)
	}
	return nil
}

func (m *mockInterviewStore) ListForCompany(ctx context.Context, companyID int64, upcomingOnly bool) ([]model.Interview, error) {
	if m.listForCompanyFn != nil {
		return m.listForCompanyFn(ctx, companyID, upcomingOnly)
	}
	return nil, nil
}

func (m *mockInterviewStore) ListForUser(ctx context.Context, userID int64) ([]model.Interview, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockInterviewStore) CountUpcomingForCompany(ctx context.Context, companyID int64) (int64, error) {
	if m.countUpcomingForCompanyFn != nil {
		return m.countUpcomingForCompanyFn(ctx, companyID)
	}
	return 0, nil
}

func (m *mockInterviewStore) CountUpcomingForUser(ctx context.Context, userID int64) (int64, error) {
	if m.countUpcomingForUserFn != nil {
		return m.countUpcomingForUserFn(ctx, userID)
	}
	return 0, nil
}

type mockConversationStore struct {
	upsertFn           func(ctx context.Context, conv *model.Conversation) error
	getForPrincipalFn  func(ctx context.Context, id int64, p model.Principal) (*model.Conversation, error)
	touchFn            func(ctx context.Context, id int64) error
	listForPrincipalFn func(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error)
	countUnreadFn      func(ctx context.Context, p model.Principal) (int64, error)
}

func (m *mockConversationStore) Upsert(ctx context.Context, conv *model.Conversation) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, conv)
	}
	return nil
}

func (m *mockConversationStore) GetForPrincipal(ctx context.Context, id int64, p model.Principal) (*model.Conversation, error) {
	if m.getForPrincipalFn != nil {
		return m.getForPrincipalFn(ctx, id, p)
	}
	return nil, nil
}

func (m *mockConversationStore) Touch(ctx context.Context, id int64) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id)
	}
	return nil
}

func (m *mockConversationStore) ListForPrincipal(ctx context.Context, p model.Principal) ([]model.ConversationSummary, error) {
	if m.listForPrincipalFn != nil {
		return m.listForPrincipalFn(ctx, p)
	}
	return nil, nil
}

func (m *mockConversationStore) CountUnread(ctx context.Context, p model.Principal) (int64, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(ctx, p)
	}
	return 0, nil
}

type mockMessageStore struct {
	createFn             func(ctx context.Context, msg *model.Message) error
	listByConversationFn func(ctx context.Context, conversationID int64) ([]model.Message, error)
	markReadFn           func(ctx context.Context, conversationID int64, sender model.Role) (int64, error)
}

func (m *mockMessageStore) Create(ctx context.Context, msg *model.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageStore) MarkRead(ctx context.Context, conversationID int64, sender model.Role) (int64, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, conversationID, sender)
	}
	return 0, nil
}

type mockNotificationStore struct {
	createFn      func(ctx context.Context, n *model.Notification) error
	listFn        func(ctx context.Context, role model.Role, ownerID int64, unreadOnly bool, limit int32) ([]model.Notification, error)
	markReadFn    func(ctx context.Context, id int64, role model.Role, ownerID int64) error
	markAllReadFn func(ctx context.Context, role model.Role, ownerID int64) (int64, error)
}

func (m *mockNotificationStore) Create(ctx context.Context, n *model.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	return nil
}

func (m *mockNotificationStore) List(ctx context.Context, role model.Role, ownerID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
	if m.listFn != nil {
		return m.listFn(ctx, role, ownerID, unreadOnly, limit)
	}
	return nil, nil
}

func (m *mockNotificationStore) MarkRead(ctx context.Context, id int64, role model.Role, ownerID int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id, role, ownerID)
	}
	return nil
}

func (m *mockNotificationStore) MarkAllRead(ctx context.Context, role model.Role, ownerID int64) (int64, error) {
	if m.markAllReadFn != nil {
		return m.markAllReadFn(ctx, role, ownerID)
	}
	return 0, nil
}

type mockActivityStore struct {
	createFn         func(ctx context.Context, a *model.Activity) error
	listForCompanyFn func(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error)
}

func (m *mockActivityStore) Create(ctx context.Context, a *model.Activity) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockActivityStore) ListForCompany(ctx context.Context, companyID int64, limit int32) ([]model.Activity, error) {
	if m.listForCompanyFn != nil {
		return m.listForCompanyFn(ctx, companyID, limit)
	}
	return nil, nil
}

type mockJobAlertStore struct {
	createFn     func(ctx context.Context, alert *model.JobAlert) error
	getForUserFn func(ctx context.Context, id, userID int64) (*model.JobAlert, error)
	updateFn     func(ctx context.Context, alert *model.JobAlert) error
	deleteFn     func(ctx context.Context, id, userID int64) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.JobAlert, error)
}

func (m *mockJobAlertStore) Create(ctx context.Context, alert *model.JobAlert) error {
	if m.createFn != nil {
		return m.createFn(ctx, alert)
	}
	return nil
}

func (m *mockJobAlertStore) GetForUser(ctx context.Context, id, userID int64) (*model.JobAlert, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockJobAlertStore) Update(ctx context.Context, alert *model.JobAlert) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, alert)
	}
	return nil
}

func (m *mockJobAlertStore) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

func (m *mockJobAlertStore) ListByUser(ctx context.Context, userID int64) ([]model.JobAlert, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockSavedJobStore struct {
	saveFn        func(ctx context.Context, userID, jobID int64) error
	unsaveFn      func(ctx context.Context, userID, jobID int64) error
	listByUserFn  func(ctx context.Context, userID int64) ([]model.SavedJob, error)
	countByUserFn func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockSavedJobStore) Save(ctx context.Context, userID, jobID int64) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, jobID)
	}
	return nil
}

func (m *mockSavedJobStore) Unsave(ctx context.Context, userID, jobID int64) error {
	if m.unsaveFn != nil {
		return m.unsaveFn(ctx, userID, jobID)
	}
	return nil
}

func (m *mockSavedJobStore) ListByUser(ctx context.Context, userID int64) ([]model.SavedJob, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSavedJobStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID)
	}
	return 0, nil
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return nil
}

// passthroughTx runs fn directly against the given provider.
func passthroughTx(p *mockStoreProvider) *mockTxRunner {
	return &mockTxRunner{
		withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
			return fn(p)
		},
	}
}

type mockStoreProvider struct {
	accounts      store.AccountStore
	sessions      store.SessionStore
	companies     store.CompanyStore
	users         store.UserStore
	jobs          store.JobStore
	applicants    store.ApplicantStore
	interviews    store.InterviewStore
	conversations store.ConversationStore
	messages      store.MessageStore
}

func (m *mockStoreProvider) Accounts() store.AccountStore { return m.accounts }
func (m *mockStoreProvider) Sessions() store.SessionStore { return m.sessions }
func (m *mockStoreProvider) Companies() store.CompanyStore { return m.companies }
func (m *mockStoreProvider) Users() store.UserStore { return m.users }
func (m *mockStoreProvider) Jobs() store.JobStore { return m.jobs }
func (m *mockStoreProvider) Applicants() store.ApplicantStore { return m.applicants }
func (m *mockStoreProvider) Interviews() store.InterviewStore { return m.interviews }
func (m *mockStoreProvider) Conversations() store.ConversationStore { return m.conversations }
func (m *mockStoreProvider) Messages() store.MessageStore { return m.messages }

type mockNotificationService struct {
	notified []*model.Notification
}

func (m *mockNotificationService) List(context.Context, model.Principal, bool, int32) ([]model.Notification, error) {
	return nil, nil
}

func (m *mockNotificationService) MarkRead(context.Context, model.Principal, int64) error {
	return nil
}

func (m *mockNotificationService) MarkAllRead(context.Context, model.Principal) (int64, error) {
	return 0, nil
}

func (m *mockNotificationService) Notify(_ context.Context, n *model.Notification) {
	m.notified = append(m.notified, n)
}

func strPtr(s string) *string { return &s }

func int32Ptr(v int32) *int32 { return &v }
