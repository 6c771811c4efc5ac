package interfaces

import "context"

// ITransactor runs fn inside a single store transaction.
//
// Repositories called with the ctx handed to fn join that transaction. If fn
// returns an error every write made through ctx is rolled back. A call made
// with a ctx that is already inside a transaction runs as a savepoint: an
// error rolls back only the writes made by that nested fn.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
