package ports

import "context"

// TxManager runs fn inside a single database transaction. Every
// repository call made with the context passed to fn joins that
// transaction, so all effects commit together or not at all.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
