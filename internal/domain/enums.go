package domain

import (
	"fmt"
	"strings"
)

// Observation is what the player has seen at one cell.
type Observation uint8

const (
	Unknown Observation = iota
	Hit
	Miss
)

func (o Observation) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unknown"
	}
}

// ParseObservation accepts "unknown" (or ""), "hit" and "miss", case-insensitive.
func ParseObservation(s string) (Observation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown", "none":
		return Unknown, nil
	case "hit":
		return Hit, nil
	case "miss":
		return Miss, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidObservation, s)
}

func (o Observation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Observation) UnmarshalText(b []byte) error {
	v, err := ParseObservation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
