package library

import "context"

/* Small interfaces: the member store only ever reads everything once and appends */

type Reader interface {
	// SelectAll returns every stored member in store order
	SelectAll(ctx context.Context) ([]Member, error)
}

type Writer interface {
	// Insert appends one member record
	Insert(ctx context.Context, member Member) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
