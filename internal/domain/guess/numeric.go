package guess

import (
	"fmt"
	"math"
	"strconv"
)

// EvaluateNumeric sums digit words and compares the total against want.
// An empty list sums to zero. A sum that does not fit in an int is not
// understood.
func EvaluateNumeric(words []string, want int) (Result, error) {
	guess := 0
	for _, w := range words {
		if !isDigits(w) {
			return nil, fmt.Errorf("numeric guess %q: %w", w, ErrNotUnderstood)
		}
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("numeric guess %q: %w", w, ErrNotUnderstood)
		}
		if n > math.MaxInt-guess {
			return nil, fmt.Errorf("numeric guess overflows at %q: %w", w, ErrNotUnderstood)
		}
		guess += n
	}

	if guess == want {
		return Correct{}, nil
	}
	return Incorrect{Brief: offBy(guess, want)}, nil
}

func offBy(guess, want int) string {
	return fmt.Sprintf("You were off by %d", abs(guess-want))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
