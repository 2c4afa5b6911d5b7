package guess

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotUnderstood means the input is neither a numeric guess nor valid
	// meld notation. Callers should ask again without penalty.
	ErrNotUnderstood = errors.New("guess not understood")

	// ErrRejected means the tokenizer could not consume the whole input.
	ErrRejected = fmt.Errorf("notation rejected: %w", ErrNotUnderstood)
)

// InvariantError is the panic value raised when a token that satisfied the
// grammar has no vocabulary entry. It signals a bug, never bad input.
type InvariantError struct {
	Token string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("guess: token %q matched the grammar but is not in the vocabulary", e.Token)
}
