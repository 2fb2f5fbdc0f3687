package ports

import (
	"context"

	"svw.info/battleship/internal/session"
)

// SessionStore keeps live sessions in memory. Implementations may evict.
type SessionStore interface {
	Put(ctx context.Context, s *session.Session) error
	Get(ctx context.Context, id string) (*session.Session, bool)
	Delete(ctx context.Context, id string) bool
	Len() int
}
