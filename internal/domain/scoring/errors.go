package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidHand = errors.New("invalid hand")
)
