package game

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrNoHand is returned when a guess arrives before the first deal.
	ErrNoHand = errors.New("no hand dealt")
)
