package service

import (
	"context"

	"basegraph.app/helpdesk/core/db"
	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/store"
)

// StoreProvider exposes the stores, either pool-bound or bound to a transaction.
type StoreProvider interface {
	Users() store.UserStore
	ExpertProfiles() store.ExpertProfileStore
	Conversations() store.ConversationStore
	Messages() store.MessageStore
	ExpertAssignments() store.ExpertAssignmentStore
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
		stores := store.NewStores(q)
		return fn(stores)
	})
}
