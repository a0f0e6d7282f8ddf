package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// Inject makes TxExecute available to everything called with the returned context.
func Inject(ctx context.Context, dbRepo DbRepo) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: dbRepo})
}

func TxMiddlewareHTTP(dbRepo DbRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(Inject(r.Context(), dbRepo)))
		})
	}
}

func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("failed to get transaction from context")
	}
	return t.DbRepo.WithTx(ctx, cb)
}
