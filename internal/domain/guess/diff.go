package guess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/cribguess/internal/domain/scoring"
)

// Brief messages for notation guesses.
const (
	briefRightScoreWrongMelds = "You got the right score, but the wrong hands."
)

// Diff is the comparison of guessed melds against a hand's hits.
type Diff struct {
	// GuessedScore is the sum of the guessed melds' points.
	GuessedScore int
	// Report has one line per mismatched meld type, sorted by type name.
	Report string
	// Mismatched is true when any meld type count differs.
	Mismatched bool
	// Deltas maps each mismatched type to guessed minus actual occurrences.
	Deltas map[string]int
}

// typeCounts tracks guessed minus actual occurrences per meld type.
type typeCounts map[string]int

func (c typeCounts) get(t string) int { return c[t] }

func (c typeCounts) add(t string, delta int) { c[t] = c.get(t) + delta }

func (c typeCounts) sortedTypes() []string {
	types := make([]string, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DiffMelds compares tokens against hits. Tokens must come from Tokenize;
// an unknown token panics with *InvariantError.
func DiffMelds(tokens []string, hits []scoring.Hit) Diff {
	counts := typeCounts{}
	d := Diff{Deltas: map[string]int{}}

	for _, tok := range tokens {
		m := mustLookup(tok)
		d.GuessedScore += m.Points
		counts.add(m.Type, 1)
	}
	for _, h := range hits {
		counts.add(h.Type, -1)
	}

	lines := make([]string, 0, len(counts))
	for _, t := range counts.sortedTypes() {
		v := counts.get(t)
		if v == 0 {
			continue
		}
		d.Mismatched = true
		d.Deltas[t] = v

		verb := "missed"
		if v > 0 {
			verb = "overcounted"
		}
		lines = append(lines, fmt.Sprintf("%s: You %s %d", t, verb, abs(v)))
	}
	d.Report = strings.Join(lines, "\n")
	return d
}

// Judge turns a notation guess into a Result against board.
func Judge(tokens []string, board scoring.ScoreBoard) (Result, Diff) {
	d := DiffMelds(tokens, board.Hits)
	want := board.Score

	switch {
	case !d.Mismatched && d.GuessedScore == want:
		return Correct{}, d
	case d.GuessedScore == want:
		return Incorrect{Brief: briefRightScoreWrongMelds, Details: d.Report}, d
	default:
		return Incorrect{Brief: offBy(d.GuessedScore, want), Details: d.Report}, d
	}
}
