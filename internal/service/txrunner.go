package service

import (
	"context"

	"hirely.app/api/core/db"
	"hirely.app/api/core/db/sqlc"
	"hirely.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Accounts() store.AccountStore
	Sessions() store.SessionStore
	Companies() store.CompanyStore
	Users() store.UserStore
	Jobs() store.JobStore
	Applicants() store.ApplicantStore
	Interviews() store.InterviewStore
	Conversations() store.ConversationStore
	Messages() store.MessageStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
