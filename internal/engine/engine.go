package engine

import (
	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/placement"
)

// Engine owns a board and a fleet and keeps one placement map per ship type
// plus their aggregate. It is not safe for concurrent use.
type Engine struct {
	board     *domain.Board
	fleet     *domain.Catalogue
	maps      map[string]domain.Grid
	aggregate domain.Grid
}

// New builds an engine over an empty rows x cols board and computes the
// initial maps. The engine keeps its own copy of fleet; nil means
// domain.WithDefaults().
func New(rows, cols int, fleet *domain.Catalogue) (*Engine, error) {
	b, err := domain.NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	if fleet == nil {
		fleet = domain.WithDefaults()
	} else if fleet, err = domain.NewCatalogue(fleet.Ships()...); err != nil {
		return nil, err
	}
	e := &Engine{board: b, fleet: fleet}
	e.RecomputeAll()
	return e, nil
}

func (e *Engine) Rows() int { return e.board.Rows() }
func (e *Engine) Cols() int { return e.board.Cols() }

// RecomputeAll rebuilds every ship map from the current board, then the aggregate.
func (e *Engine) RecomputeAll() {
	maps := make(map[string]domain.Grid, e.fleet.Len())
	for _, s := range e.fleet.Ships() {
		maps[s.Name] = placement.Count(e.board, s.Length)
	}
	e.maps = maps
	e.recomputeAggregate()
}

func (e *Engine) recomputeAggregate() {
	agg := domain.NewGrid(e.board.Rows(), e.board.Cols())
	for _, s := range e.fleet.Ships() {
		if s.Sunk {
			continue
		}
		m := e.maps[s.Name]
		for r := range agg {
			for c := range agg[r] {
				agg[r][c] += m[r][c]
			}
		}
	}
	e.aggregate = agg
}

// MapFor returns a copy of the named ship's current map.
func (e *Engine) MapFor(name string) (domain.Grid, error) {
	if _, err := e.fleet.Ship(name); err != nil {
		return nil, err
	}
	return e.maps[name].Clone(), nil
}

// Aggregate returns a copy of the sum over ships not marked sunk.
func (e *Engine) Aggregate() domain.Grid { return e.aggregate.Clone() }

// Reset clears the board but keeps sunk flags, then recomputes.
func (e *Engine) Reset() {
	e.board.Reset()
	e.RecomputeAll()
}

// ResetSession is Reset under the name used by the presentation boundary.
func (e *Engine) ResetSession() { e.Reset() }

// SetObservation records a cell observation. Maps are stale until RecomputeAll.
func (e *Engine) SetObservation(r, c int, o domain.Observation) error {
	return e.board.Set(r, c, o)
}

// Board returns a copy of the current observations.
func (e *Engine) Board() *domain.Board { return e.board.Clone() }

func (e *Engine) Observation(r, c int) (domain.Observation, error) {
	return e.board.Get(r, c)
}

// SetShipSunk flips a ship's flag and re-derives the aggregate from the
// stored maps. The ship's own map is left as is.
func (e *Engine) SetShipSunk(name string, sunk bool) error {
	if err := e.fleet.SetSunk(name, sunk); err != nil {
		return err
	}
	e.recomputeAggregate()
	return nil
}

// Names lists ship types in catalogue order.
func (e *Engine) Names() []string { return e.fleet.Names() }

func (e *Engine) Ships() []domain.ShipType { return e.fleet.Ships() }

// Snapshot copies everything the presentation layer reads.
func (e *Engine) Snapshot() domain.Snapshot {
	per := make(map[string]domain.Grid, len(e.maps))
	for name, m := range e.maps {
		per[name] = m.Clone()
	}
	return domain.Snapshot{
		Rows:      e.board.Rows(),
		Cols:      e.board.Cols(),
		Board:     e.board.Cells(),
		Ships:     e.fleet.Ships(),
		Aggregate: e.aggregate.Clone(),
		PerShip:   per,
		Targets:   e.Targets(1),
	}
}
