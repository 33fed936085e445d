package repo

import "context"

type ConnHandler func(context.Context, Conn) error

// Pool represents a database connection pool. Connections are
// acquired with the Conn method for the lifetime of one handler call
// and released afterwards. The pool is safe for concurrent use.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
