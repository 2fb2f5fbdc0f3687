package session

import (
	"sync"
	"time"

	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/engine"
)

// Session is one game: a single engine behind a mutex. Every mutation is
// followed by a full recompute before the lock is released.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu  sync.Mutex
	eng *engine.Engine
}

func New(id string, eng *engine.Engine) *Session {
	return &Session{ID: id, CreatedAt: time.Now(), eng: eng}
}

func (s *Session) Observe(r, c int, o domain.Observation) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.SetObservation(r, c, o); err != nil {
		return domain.Snapshot{}, err
	}
	s.eng.RecomputeAll()
	return s.snapshot(), nil
}

func (s *Session) SetSunk(name string, sunk bool) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.SetShipSunk(name, sunk); err != nil {
		return domain.Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (s *Session) Reset() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.ResetSession()
	return s.snapshot()
}

func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// MapFor returns the named ship's map, or the aggregate when name is empty,
// together with a copy of the board.
func (s *Session) MapFor(name string) (*domain.Board, domain.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.eng.Board()
	if name == "" {
		return b, s.eng.Aggregate(), nil
	}
	g, err := s.eng.MapFor(name)
	if err != nil {
		return nil, nil, err
	}
	return b, g, nil
}

func (s *Session) snapshot() domain.Snapshot {
	snap := s.eng.Snapshot()
	snap.ID = s.ID
	return snap
}
