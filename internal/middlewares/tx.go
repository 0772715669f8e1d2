package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/pixelgrid/snake-arena-api/internal/logger"
)

// txContainer carries the request transaction plus an abort flag so handlers
// can force a rollback after a domain failure (a failed submission must not
// leave a partial score row behind).
type txContainer struct {
	tx      *sqlx.Tx
	aborted bool
}

type contextKey struct{}

var txKey = contextKey{}

// TxMiddleware wraps a handler with a database transaction. The transaction
// commits after the handler returns, unless the handler marked it for
// rollback or panicked.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			container := &txContainer{tx: tx}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx := context.WithValue(r.Context(), txKey, container)
			next.ServeHTTP(w, r.WithContext(ctx))

			if container.aborted {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}

// GetTxFromContext retrieves the request transaction. Returns nil when the
// handler runs outside TxMiddleware.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if c, ok := ctx.Value(txKey).(*txContainer); ok {
		return c.tx
	}
	return nil
}

// MarkRollback flags the request transaction for rollback instead of commit.
// No-op outside TxMiddleware.
func MarkRollback(ctx context.Context) {
	if c, ok := ctx.Value(txKey).(*txContainer); ok {
		c.aborted = true
	}
}
