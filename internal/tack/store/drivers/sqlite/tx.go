package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op; the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users               { return &usersRepo{q: t.q} }
func (t *txStore) Workspaces() store.Workspaces     { return &workspacesRepo{q: t.q} }
func (t *txStore) Memberships() store.Memberships   { return &membershipsRepo{q: t.q} }
func (t *txStore) Boards() store.Boards             { return &boardsRepo{q: t.q} }
func (t *txStore) BoardMembers() store.BoardMembers { return &boardMembersRepo{q: t.q} }
func (t *txStore) Lists() store.Lists               { return &listsRepo{q: t.q} }
func (t *txStore) Cards() store.Cards               { return &cardsRepo{q: t.q} }
func (t *txStore) Comments() store.Comments         { return &commentsRepo{q: t.q} }
func (t *txStore) VerificationTokens() store.VerificationTokens {
	return &verificationTokensRepo{q: t.q}
}
func (t *txStore) ResetTokens() store.ResetTokens { return &resetTokensRepo{q: t.q} }
func (t *txStore) Invites() store.Invites         { return &invitesRepo{q: t.q} }
func (t *txStore) Revocations() store.Revocations { return &revocationsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // applied before any tx starts
