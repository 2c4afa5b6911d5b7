// Package scoring computes the show-hand score of a cribbage hand.
package scoring

import (
	"fmt"

	"github.com/okian/cribguess/internal/domain/cards"
)

// Meld type names. Guess notation maps onto these exact strings.
const (
	TypeFifteen         = "Fifteen"
	TypePair            = "Pair"
	TypePairRoyal       = "Pair Royal"
	TypeDoublePairRoyal = "Double Pair Royal"
	TypeRun3            = "Run of 3"
	TypeRun4            = "Run of 4"
	TypeRun5            = "Run of 5"
	TypeHandFlush       = "Hand Flush"
	TypeFiveCardFlush   = "Five Card Flush"
	TypeNobs            = "His Nobs"
)

// Scoring constants.
const (
	handSize       = 4
	fifteen        = 15
	fifteenPoints  = 2
	minRunLength   = 3
	handFlushScore = 4
	fullFlushScore = 5
	nobsPoints     = 1
)

var pairMelds = map[int]Hit{
	2: {Type: TypePair, Score: 2},
	3: {Type: TypePairRoyal, Score: 6},
	4: {Type: TypeDoublePairRoyal, Score: 12},
}

var runTypes = map[int]string{
	3: TypeRun3,
	4: TypeRun4,
	5: TypeRun5,
}

// Hit is a single meld found in a hand.
type Hit struct {
	Type  string
	Score int
}

// ScoreBoard is the full scoring breakdown of a hand.
type ScoreBoard struct {
	Score int
	Hits  []Hit
}

// Hand is a starter card plus the four cards held.
type Hand struct {
	starter cards.Card
	cards   []cards.Card
	board   ScoreBoard
}

// NewHand builds a hand and scores it.
func NewHand(starter cards.Card, rest []cards.Card) (*Hand, error) {
	if len(rest) != handSize {
		return nil, fmt.Errorf("need %d hand cards, got %d: %w", handSize, len(rest), ErrInvalidHand)
	}

	seen := make(map[cards.Card]bool, handSize+1)
	for _, c := range append([]cards.Card{starter}, rest...) {
		if !c.Rank.Valid() {
			return nil, fmt.Errorf("rank %d: %w", c.Rank, ErrInvalidHand)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %s: %w", c, ErrInvalidHand)
		}
		seen[c] = true
	}

	h := &Hand{
		starter: starter,
		cards:   append([]cards.Card(nil), rest...),
	}
	h.board = Score(h.starter, h.cards)
	return h, nil
}

// Starter returns the starter card.
func (h *Hand) Starter() cards.Card { return h.starter }

// Cards returns a copy of the four held cards.
func (h *Hand) Cards() []cards.Card {
	return append([]cards.Card(nil), h.cards...)
}

// ScoreBoard returns the scoring breakdown of the hand.
func (h *Hand) ScoreBoard() ScoreBoard {
	return ScoreBoard{
		Score: h.board.Score,
		Hits:  append([]Hit(nil), h.board.Hits...),
	}
}

// Score computes the hits of starter plus hand, in the order fifteens,
// pairs, runs, flush, nobs.
func Score(starter cards.Card, hand []cards.Card) ScoreBoard {
	all := append([]cards.Card{starter}, hand...)

	var hits []Hit
	hits = append(hits, fifteens(all)...)
	hits = append(hits, pairs(all)...)
	hits = append(hits, runs(all)...)
	hits = append(hits, flush(starter, hand)...)
	hits = append(hits, nobs(starter, hand)...)

	board := ScoreBoard{Hits: hits}
	for _, h := range hits {
		board.Score += h.Score
	}
	return board
}

// fifteens emits one hit per distinct card combination totalling 15.
func fifteens(all []cards.Card) []Hit {
	var hits []Hit
	for mask := 1; mask < 1<<len(all); mask++ {
		sum := 0
		for i, c := range all {
			if mask&(1<<i) != 0 {
				sum += c.Value()
			}
		}
		if sum == fifteen {
			hits = append(hits, Hit{Type: TypeFifteen, Score: fifteenPoints})
		}
	}
	return hits
}

func rankCounts(all []cards.Card) [cards.King + 1]int {
	var counts [cards.King + 1]int
	for _, c := range all {
		counts[c.Rank]++
	}
	return counts
}

func pairs(all []cards.Card) []Hit {
	counts := rankCounts(all)
	var hits []Hit
	for rank := cards.Ace; rank <= cards.King; rank++ {
		if meld, ok := pairMelds[counts[rank]]; ok {
			hits = append(hits, meld)
		}
	}
	return hits
}

// runs finds the longest run of consecutive ranks and emits one hit per
// card combination that forms it. Five cards cannot hold two separate runs.
func runs(all []cards.Card) []Hit {
	counts := rankCounts(all)

	bestStart, bestLen := 0, 0
	for start := cards.Ace; start <= cards.King; start++ {
		length := 0
		for r := start; r <= cards.King && counts[r] > 0; r++ {
			length++
		}
		if length > bestLen {
			bestStart, bestLen = int(start), length
		}
	}
	if bestLen < minRunLength {
		return nil
	}

	combos := 1
	for r := bestStart; r < bestStart+bestLen; r++ {
		combos *= counts[r]
	}

	hits := make([]Hit, 0, combos)
	for i := 0; i < combos; i++ {
		hits = append(hits, Hit{Type: runTypes[bestLen], Score: bestLen})
	}
	return hits
}

func flush(starter cards.Card, hand []cards.Card) []Hit {
	if len(hand) == 0 {
		return nil
	}
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			return nil
		}
	}
	if starter.Suit == hand[0].Suit {
		return []Hit{{Type: TypeFiveCardFlush, Score: fullFlushScore}}
	}
	return []Hit{{Type: TypeHandFlush, Score: handFlushScore}}
}

func nobs(starter cards.Card, hand []cards.Card) []Hit {
	for _, c := range hand {
		if c.Rank == cards.Jack && c.Suit == starter.Suit {
			return []Hit{{Type: TypeNobs, Score: nobsPoints}}
		}
	}
	return nil
}
