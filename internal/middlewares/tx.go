package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/response"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction commits when the handler answers below 400 and rolls back
// otherwise. The response is held back until the outcome is known.
// Functions registered with AfterCommit run only once the commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				response.Error(w, err)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			hooks := &commitHooks{}

			ctx := context.WithValue(setTxToContext(r.Context(), tx), hooksKey, hooks)
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				response.Error(w, err)
				return
			}
			buf.flush(w)

			for _, fn := range hooks.fns {
				fn(r.Context())
			}
		})
	}
}

// bufferedWriter records a response so it can be replaced before reaching the client.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(b.statusCode)
	if _, err := w.Write(b.body.Bytes()); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	txKey contextKey = iota
	hooksKey
)

// commitHooks collects the functions to run after a successful commit.
type commitHooks struct {
	fns []func(ctx context.Context)
}

// AfterCommit defers fn until the request transaction in ctx has committed.
// fn is dropped when the transaction rolls back. Without a transaction fn runs at once.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn(ctx)
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
