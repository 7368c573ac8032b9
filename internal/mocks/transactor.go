// Package mocks holds testify mocks of the repository interfaces, shared by service tests.
package mocks

import "context"

// Transactor runs fn directly and counts calls. Err, when set, is returned
// without running fn, as a failed BEGIN would.
type Transactor struct {
	Calls int
	Err   error
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx)
}
