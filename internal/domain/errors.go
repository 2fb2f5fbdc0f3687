package domain

import "errors"

var (
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrUnknownShipType    = errors.New("unknown ship type")
	ErrInvalidShipType    = errors.New("invalid ship type")
	ErrInvalidObservation = errors.New("invalid observation")
)
