package guess

import (
	"sort"

	"github.com/okian/cribguess/internal/domain/scoring"
)

// Meld is a vocabulary entry: a notation code and the meld it names.
type Meld struct {
	Code   string
	Type   string
	Points int
}

var vocabulary = map[string]Meld{
	"n":  {Code: "n", Type: scoring.TypeNobs, Points: 1},
	"f":  {Code: "f", Type: scoring.TypeFifteen, Points: 2},
	"s":  {Code: "s", Type: scoring.TypeHandFlush, Points: 4},
	"S":  {Code: "S", Type: scoring.TypeFiveCardFlush, Points: 5},
	"r3": {Code: "r3", Type: scoring.TypeRun3, Points: 3},
	"r4": {Code: "r4", Type: scoring.TypeRun4, Points: 4},
	"r5": {Code: "r5", Type: scoring.TypeRun5, Points: 5},
	"p":  {Code: "p", Type: scoring.TypePair, Points: 2},
	"p2": {Code: "p2", Type: scoring.TypePair, Points: 2},
	"p3": {Code: "p3", Type: scoring.TypePairRoyal, Points: 6},
	"p4": {Code: "p4", Type: scoring.TypeDoublePairRoyal, Points: 12},
}

// Lookup returns the meld named by code.
func Lookup(code string) (Meld, bool) {
	m, ok := vocabulary[code]
	return m, ok
}

// Vocabulary returns every entry sorted by code.
func Vocabulary() []Meld {
	out := make([]Meld, 0, len(vocabulary))
	for _, m := range vocabulary {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// mustLookup is Lookup for tokens produced by Tokenize.
func mustLookup(token string) Meld {
	m, ok := vocabulary[token]
	if !ok {
		panic(&InvariantError{Token: token})
	}
	return m
}
