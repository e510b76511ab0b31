package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"
	"golang.org/x/crypto/bcrypt"

	"hirely.app/api/common/id"
	"hirely.app/api/core/config"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/store"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores anything longer
)

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     *model.Role
}

// AuthResult is returned by every call that issues a session.
type AuthResult struct {
	Principal model.Principal
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to a principal. A principal with an empty
	// role is returned for accounts that have not picked one yet.
	Resolve(ctx context.Context, token string) (*model.Principal, error)
	Account(ctx context.Context, p model.Principal) (*model.Account, error)
	SelectRole(ctx context.Context, p model.Principal, role model.Role) (*model.Principal, error)
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*AuthResult, error)
}

type authService struct {
	accounts  store.AccountStore
	sessions  store.SessionStore
	companies store.CompanyStore
	users     store.UserStore
	txRunner  TxRunner
	tokens    *TokenCodec
	ttl       time.Duration
	workos    config.WorkOSConfig
}

func NewAuthService(
	accounts store.AccountStore,
	sessions store.SessionStore,
	companies store.CompanyStore,
	users store.UserStore,
	txRunner TxRunner,
	sessionCfg config.SessionConfig,
	workosCfg config.WorkOSConfig,
) AuthService {
	if workosCfg.Enabled() {
		usermanagement.SetAPIKey(workosCfg.APIKey)
	}
	return &authService{
		accounts:  accounts,
		sessions:  sessions,
		companies: companies,
		users:     users,
		txRunner:  txRunner,
		tokens:    NewTokenCodec(sessionCfg.Secret),
		ttl:       sessionCfg.TTL,
		workos:    workosCfg,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if !strings.Contains(email, "@") {
		return nil, invalid("email", "must be a valid email address")
	}
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if len(in.Password) < minPasswordLen || len(in.Password) > maxPasswordLen {
		return nil, invalid("password", fmt.Sprintf("must be %d to %d characters", minPasswordLen, maxPasswordLen))
	}
	if in.Role != nil && !in.Role.Valid() {
		return nil, invalid("role", "must be company or user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	hashStr := string(hash)

	account := &model.Account{
		ID:           id.New(),
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
		Role:         in.Role,
	}

	var principal *model.Principal
	var session *model.Session
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Accounts().Create(ctx, account); err != nil {
			return storeErr(err, "creating account")
		}
		p, err := createProfile(ctx, stores, account)
		if err != nil {
			return err
		}
		principal = p
		session, err = s.newSession(ctx, stores.Sessions(), account.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "account created",
		"account_id", account.ID,
		"role", principal.Role,
	)
	return s.result(*principal, account, session)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}
	if account.PasswordHash == nil {
		return nil, ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}

	principal, err := s.principalFor(ctx, account)
	if err != nil {
		return nil, err
	}
	session, err := s.newSession(ctx, s.sessions, account.ID)
	if err != nil {
		return nil, err
	}
	return s.result(*principal, account, session)
}

// Logout deletes the session behind token. An invalid token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	sid, _, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*model.Principal, error) {
	sid, claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetValid(ctx, sid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	account, err := s.accounts.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}
	if !strings.EqualFold(account.Email, claims.Email) {
		return nil, ErrAccountNotFound
	}

	p, err := s.principalFor(ctx, account)
	if err != nil {
		return nil, err
	}
	p.SessionID = session.ID
	return p, nil
}

func (s *authService) Account(ctx context.Context, p model.Principal) (*model.Account, error) {
	account, err := s.accounts.GetByID(ctx, p.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}
	return account, nil
}

// SelectRole sets the account role. The first pick is free and one switch is
// allowed afterwards; switching drops the previous profile and what it owns.
func (s *authService) SelectRole(ctx context.Context, p model.Principal, role model.Role) (*model.Principal, error) {
	if !role.Valid() {
		return nil, invalid("role", "must be company or user")
	}

	account, err := s.Account(ctx, p)
	if err != nil {
		return nil, err
	}
	if account.Role != nil && *account.Role == role {
		current := p
		return &current, nil
	}
	if !account.CanChangeRole() {
		return nil, ErrForbidden
	}
	previous := account.Role

	var principal *model.Principal
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		updated, err := stores.Accounts().SetRole(ctx, account.ID, role)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrForbidden
			}
			return fmt.Errorf("setting role: %w", err)
		}

		if previous != nil {
			switch *previous {
			case model.RoleCompany:
				err = stores.Companies().DeleteByAccount(ctx, account.ID)
			case model.RoleUser:
				err = stores.Users().DeleteByAccount(ctx, account.ID)
			}
			if err != nil {
				return fmt.Errorf("deleting previous profile: %w", err)
			}
		}

		principal, err = createProfile(ctx, stores, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "account role selected",
		"account_id", account.ID,
		"role", role,
		"switched", previous != nil,
	)
	principal.SessionID = p.SessionID
	return principal, nil
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	if !s.workos.Enabled() {
		return "", ErrNotConfigured
	}
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.workos.ClientID,
		RedirectURI: s.workos.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

// HandleCallback exchanges a WorkOS code, links or creates the account and
// issues a session. New SSO accounts start without a role.
func (s *authService) HandleCallback(ctx context.Context, code string) (*AuthResult, error) {
	if !s.workos.Enabled() {
		return nil, ErrNotConfigured
	}
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.workos.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrUnauthenticated
	}
	workosUser := resp.User

	account, err := s.accountForWorkOS(ctx, workosUser)
	if err != nil {
		return nil, err
	}
	principal, err := s.principalFor(ctx, account)
	if err != nil {
		return nil, err
	}
	session, err := s.newSession(ctx, s.sessions, account.ID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "account authenticated via sso",
		"account_id", account.ID,
		"session_id", session.ID,
	)
	return s.result(*principal, account, session)
}

func (s *authService) accountForWorkOS(ctx context.Context, u usermanagement.User) (*model.Account, error) {
	account, err := s.accounts.GetByWorkOSID(ctx, u.ID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting account by workos id: %w", err)
	}

	email := normalizeEmail(u.Email)
	account, err = s.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		linked, err := s.accounts.LinkWorkOS(ctx, account.ID, u.ID)
		if err != nil {
			return nil, fmt.Errorf("linking workos id: %w", err)
		}
		return linked, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("getting account by email: %w", err)
	}

	workosID := u.ID
	account = &model.Account{
		ID:       id.New(),
		Email:    email,
		Name:     buildUserName(u),
		WorkOSID: &workosID,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, storeErr(err, "creating account")
	}
	return account, nil
}

// principalFor loads the profile row matching the account role, by email.
func (s *authService) principalFor(ctx context.Context, account *model.Account) (*model.Principal, error) {
	p := &model.Principal{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
	}
	if account.Role == nil {
		return p, nil
	}

	p.Role = *account.Role
	switch p.Role {
	case model.RoleCompany:
		company, err := s.companies.GetByEmail(ctx, account.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("getting company: %w", err)
		}
		p.ID, p.Name = company.ID, company.Name
	case model.RoleUser:
		user, err := s.users.GetByEmail(ctx, account.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("getting user: %w", err)
		}
		p.ID, p.Name = user.ID, user.Name
	default:
		return nil, ErrAccountNotFound
	}
	return p, nil
}

func (s *authService) newSession(ctx context.Context, sessions store.SessionStore, accountID int64) (*model.Session, error) {
	session := &model.Session{
		ID:        id.New(),
		AccountID: accountID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *authService) result(p model.Principal, account *model.Account, session *model.Session) (*AuthResult, error) {
	token, err := s.tokens.Sign(session.ID, account.ID, account.Email, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	p.SessionID = session.ID
	return &AuthResult{Principal: p, Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// createProfile creates the Company or User row for the account role, if it
// does not exist yet, and returns the matching principal.
func createProfile(ctx context.Context, stores StoreProvider, account *model.Account) (*model.Principal, error) {
	p := &model.Principal{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
	}
	if account.Role == nil {
		return p, nil
	}
	p.Role = *account.Role

	switch p.Role {
	case model.RoleCompany:
		if existing, err := stores.Companies().GetByEmail(ctx, account.Email); err == nil {
			p.ID, p.Name = existing.ID, existing.Name
			return p, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting company: %w", err)
		}
		slug, err := uniqueCompanySlug(ctx, stores.Companies(), account.Name)
		if err != nil {
			return nil, err
		}
		company := &model.Company{
			ID:        id.New(),
			AccountID: account.ID,
			Email:     account.Email,
			Name:      account.Name,
			Slug:      slug,
		}
		if err := stores.Companies().Create(ctx, company); err != nil {
			return nil, storeErr(err, "creating company")
		}
		p.ID = company.ID
	case model.RoleUser:
		if existing, err := stores.Users().GetByEmail(ctx, account.Email); err == nil {
			p.ID, p.Name = existing.ID, existing.Name
			return p, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting user: %w", err)
		}
		user := &model.User{
			ID:        id.New(),
			AccountID: account.ID,
			Email:     account.Email,
			Name:      account.Name,
		}
		if err := stores.Users().Create(ctx, user); err != nil {
			return nil, storeErr(err, "creating user")
		}
		p.ID = user.ID
	}
	return p, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func buildUserName(user usermanagement.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name != "" {
		return name
	}
	return user.Email
}
