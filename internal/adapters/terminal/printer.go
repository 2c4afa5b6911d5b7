// Package terminal plays the game on a line-oriented terminal.
package terminal

import (
	"fmt"
	"strings"

	"github.com/okian/cribguess/internal/domain/guess"
	"github.com/okian/cribguess/internal/domain/scoring"
)

// separatorWidth is the width of the line printed between turns.
const separatorWidth = 60

// HandString renders the starter and the four hand cards.
func HandString(h *scoring.Hand) string {
	held := h.Cards()
	labels := make([]string, len(held))
	for i, c := range held {
		labels[i] = c.String()
	}
	return fmt.Sprintf("Starter: %s   Hand: %s", h.Starter(), strings.Join(labels, " "))
}

// ScoreString renders a scoring breakdown, one line per meld type in the
// order the melds were found.
func ScoreString(b scoring.ScoreBoard) string {
	var sb strings.Builder
	if len(b.Hits) == 0 {
		sb.WriteString("  Nothing to score.\n")
	}

	var order []string
	count := map[string]int{}
	points := map[string]int{}
	for _, h := range b.Hits {
		if count[h.Type] == 0 {
			order = append(order, h.Type)
		}
		count[h.Type]++
		points[h.Type] += h.Score
	}
	for _, t := range order {
		fmt.Fprintf(&sb, "  %-18s x%d %4d\n", t, count[t], points[t])
	}
	fmt.Fprintf(&sb, "  %-18s %7d", "Total", b.Score)
	return sb.String()
}

// meldHelp describes each notation code for the help screen.
var meldHelp = map[string]string{
	"n":  "his nobs",
	"f":  "fifteen",
	"s":  "a flush in the hand (but not the starter)",
	"S":  "a flush across all five cards",
	"r3": "a run of 3 cards",
	"r4": "a run of 4 cards",
	"r5": "a run of 5 cards",
	"p":  "a pair",
	"p2": "a pair",
	"p3": "a pair royal (three of a kind)",
	"p4": "a double pair royal (four of a kind)",
}

// HelpText explains both guess formats and lists the notation codes.
func HelpText() string {
	var sb strings.Builder
	sb.WriteString(`
You've got a cribbage hand in front of you.  Score it!

You can just enter a number, or a bunch: "2 2 1" to guess 5.

If you know exactly which melds are in the hand, name them in compact
notation, like "p3n" for "a Pair Royal and His Nobs".  Spaces between codes
are optional.  The codes are:

`)
	for _, m := range guess.Vocabulary() {
		fmt.Fprintf(&sb, "  %-3s %-38s (%s, %d)\n", m.Code, meldHelp[m.Code], m.Type, m.Points)
	}
	return sb.String()
}

func separator() string {
	return strings.Repeat("┄", separatorWidth)
}
