package domain

import (
	"fmt"
	"strings"
)

// ShipType is a named ship class. Length is fixed; Sunk is toggled by the player.
type ShipType struct {
	Name   string `json:"name" mapstructure:"name"`
	Length int    `json:"length" mapstructure:"length"`
	Sunk   bool   `json:"sunk,omitempty" mapstructure:"sunk"`
}

// DefaultFleet is the standard five-ship set.
func DefaultFleet() []ShipType {
	return []ShipType{
		{Name: "Destroyer", Length: 2},
		{Name: "Submarine", Length: 3},
		{Name: "Cruiser", Length: 3},
		{Name: "Battleship", Length: 4},
		{Name: "Carrier", Length: 5},
	}
}

// Catalogue is an insertion-ordered set of ship types keyed by name.
type Catalogue struct {
	ships []ShipType
	index map[string]int
}

// NewCatalogue validates and copies the given definitions, keeping their order.
func NewCatalogue(ships ...ShipType) (*Catalogue, error) {
	c := &Catalogue{
		ships: make([]ShipType, 0, len(ships)),
		index: make(map[string]int, len(ships)),
	}
	for _, s := range ships {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidShipType)
		}
		if s.Length <= 0 {
			return nil, fmt.Errorf("%w: %s has length %d", ErrInvalidShipType, s.Name, s.Length)
		}
		if _, dup := c.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidShipType, s.Name)
		}
		c.index[s.Name] = len(c.ships)
		c.ships = append(c.ships, s)
	}
	return c, nil
}

// WithDefaults returns a catalogue of DefaultFleet, none sunk.
func WithDefaults() *Catalogue {
	c, _ := NewCatalogue(DefaultFleet()...)
	return c
}

func (c *Catalogue) Len() int { return len(c.ships) }

// Names lists ship names in insertion order.
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.ships))
	for i, s := range c.ships {
		out[i] = s.Name
	}
	return out
}

func (c *Catalogue) Ship(name string) (ShipType, error) {
	i, ok := c.index[name]
	if !ok {
		return ShipType{}, fmt.Errorf("%w: %q", ErrUnknownShipType, name)
	}
	return c.ships[i], nil
}

func (c *Catalogue) SetSunk(name string, sunk bool) error {
	i, ok := c.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShipType, name)
	}
	c.ships[i].Sunk = sunk
	return nil
}

// Ships returns a copy of every definition in insertion order.
func (c *Catalogue) Ships() []ShipType {
	return append([]ShipType(nil), c.ships...)
}
