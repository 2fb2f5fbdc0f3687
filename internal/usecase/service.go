package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/engine"
	"svw.info/battleship/internal/ports"
	"svw.info/battleship/internal/session"
)

// ErrSessionNotFound is returned for an unknown or evicted session ID.
var ErrSessionNotFound = errors.New("session not found")

var errNotConfigured = errors.New("usecase dependency not configured")

// Defaults applies to sessions created without explicit dimensions.
// MaxRows and MaxCols cap requested sizes; zero means no cap.
type Defaults struct {
	Rows    int
	Cols    int
	MaxRows int
	MaxCols int
	Fleet   []domain.ShipType
}

type Service struct {
	Store    ports.SessionStore
	Defaults Defaults
	Log      zerolog.Logger
}

func NewService(st ports.SessionStore, d Defaults, log zerolog.Logger) *Service {
	return &Service{Store: st, Defaults: d, Log: log}
}

// Create starts a new session. Zero rows or cols fall back to the defaults.
func (u *Service) Create(ctx context.Context, rows, cols int) (domain.Snapshot, error) {
	if u.Store == nil {
		return domain.Snapshot{}, errNotConfigured
	}
	if rows == 0 {
		rows = u.Defaults.Rows
	}
	if cols == 0 {
		cols = u.Defaults.Cols
	}
	if (u.Defaults.MaxRows > 0 && rows > u.Defaults.MaxRows) || (u.Defaults.MaxCols > 0 && cols > u.Defaults.MaxCols) {
		return domain.Snapshot{}, fmt.Errorf("%w: %dx%d exceeds %dx%d",
			domain.ErrInvalidDimensions, rows, cols, u.Defaults.MaxRows, u.Defaults.MaxCols)
	}
	var fleet *domain.Catalogue
	if len(u.Defaults.Fleet) > 0 {
		c, err := domain.NewCatalogue(u.Defaults.Fleet...)
		if err != nil {
			return domain.Snapshot{}, err
		}
		fleet = c
	}
	start := time.Now()
	eng, err := engine.New(rows, cols, fleet)
	if err != nil {
		return domain.Snapshot{}, err
	}
	recomputeDuration.Observe(time.Since(start).Seconds())
	s := session.New(uuid.NewString(), eng)
	if err := u.Store.Put(ctx, s); err != nil {
		return domain.Snapshot{}, err
	}
	sessionsCreated.Inc()
	sessionsActive.Set(float64(u.Store.Len()))
	u.Log.Info().Str("session", s.ID).Int("rows", rows).Int("cols", cols).Msg("session created")
	return s.Snapshot(), nil
}

func (u *Service) Observe(ctx context.Context, id string, at domain.CellCoord, o domain.Observation) (domain.Snapshot, error) {
	s, err := u.lookup(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	start := time.Now()
	snap, err := s.Observe(at.Row, at.Col, o)
	if err != nil {
		return domain.Snapshot{}, err
	}
	recomputeDuration.Observe(time.Since(start).Seconds())
	observations.WithLabelValues(o.String()).Inc()
	u.Log.Debug().Str("session", id).Stringer("cell", at).Stringer("kind", o).Msg("observation")
	return snap, nil
}

func (u *Service) SetSunk(ctx context.Context, id, name string, sunk bool) (domain.Snapshot, error) {
	s, err := u.lookup(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap, err := s.SetSunk(name, sunk)
	if err != nil {
		return domain.Snapshot{}, err
	}
	u.Log.Debug().Str("session", id).Str("ship", name).Bool("sunk", sunk).Msg("ship status")
	return snap, nil
}

func (u *Service) Reset(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := u.lookup(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	start := time.Now()
	snap := s.Reset()
	recomputeDuration.Observe(time.Since(start).Seconds())
	u.Log.Info().Str("session", id).Msg("session reset")
	return snap, nil
}

func (u *Service) Snapshot(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := u.lookup(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// Map returns a board copy and either the aggregate (empty ship) or one ship's map.
func (u *Service) Map(ctx context.Context, id, ship string) (*domain.Board, domain.Grid, error) {
	s, err := u.lookup(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return s.MapFor(ship)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Store == nil {
		return errNotConfigured
	}
	if !u.Store.Delete(ctx, id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sessionsActive.Set(float64(u.Store.Len()))
	u.Log.Info().Str("session", id).Msg("session deleted")
	return nil
}

func (u *Service) lookup(ctx context.Context, id string) (*session.Session, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	s, ok := u.Store.Get(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}
