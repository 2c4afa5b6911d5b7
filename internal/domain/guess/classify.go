package guess

// Kind tells which evaluator a guess is routed to.
type Kind int

const (
	// KindNumeric is a guess made only of digit words, e.g. "2 2 3".
	KindNumeric Kind = iota
	// KindNotation is anything else, read as meld notation.
	KindNotation
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "notation"
}

// Classify returns KindNumeric when every word is a run of ASCII digits.
func Classify(words []string) Kind {
	for _, w := range words {
		if !isDigits(w) {
			return KindNotation
		}
	}
	return KindNumeric
}

func isDigits(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}
