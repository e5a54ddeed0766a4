package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx returns a context carrying the transaction, picked up by GetQuerier
// in every repository method.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns either the ambient transaction or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
