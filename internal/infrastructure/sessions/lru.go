package sessions

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"svw.info/battleship/internal/session"
)

// LRU is an in-memory session store that drops the least recently used
// session once capacity is reached.
type LRU struct {
	cache *lru.Cache[string, *session.Session]
}

func NewLRU(capacity int, onEvict func(id string)) (*LRU, error) {
	if capacity <= 0 {
		return nil, errors.New("session capacity must be positive")
	}
	var (
		c   *lru.Cache[string, *session.Session]
		err error
	)
	if onEvict != nil {
		c, err = lru.NewWithEvict[string, *session.Session](capacity, func(id string, _ *session.Session) {
			onEvict(id)
		})
	} else {
		c, err = lru.New[string, *session.Session](capacity)
	}
	if err != nil {
		return nil, err
	}
	return &LRU{cache: c}, nil
}

func (s *LRU) Put(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.ID == "" {
		return errors.New("invalid session: missing ID")
	}
	s.cache.Add(sess.ID, sess)
	return nil
}

func (s *LRU) Get(ctx context.Context, id string) (*session.Session, bool) {
	return s.cache.Get(id)
}

func (s *LRU) Delete(ctx context.Context, id string) bool {
	return s.cache.Remove(id)
}

func (s *LRU) Len() int { return s.cache.Len() }
