package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// txContextKey is an unexported key type to avoid context key collisions.
type txContextKey struct{}

// WithTx returns a context carrying tx. Store methods called with the
// resulting context run their statements on tx instead of the pool, so a
// registration and any surrounding application writes can commit atomically.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext extracts a pgx.Tx previously stored with WithTx.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}
