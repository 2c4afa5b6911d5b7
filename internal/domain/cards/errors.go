package cards

import "errors"

// Sentinel errors for deck operations.
var (
	ErrNotEnoughCards = errors.New("not enough cards in deck")
)
