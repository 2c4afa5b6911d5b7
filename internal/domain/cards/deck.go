package cards

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Option applies a configuration option to a Deck.
type Option func(*Deck)

// WithSeed makes shuffling deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(d *Deck) {
		d.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// WithCards replaces the standard 52 cards with a fixed sequence.
// The deck is left in the given order until Shuffle is called.
func WithCards(cards []Card) Option {
	return func(d *Deck) {
		d.cards = append([]Card(nil), cards...)
	}
}

// Deck represents a collection of cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a standard 52-card deck in suit/rank order.
func NewDeck(opts ...Option) *Deck {
	d := &Deck{}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.rng == nil {
		now := uint64(time.Now().UnixNano()) //nolint:gosec // wall clock is a fine shuffle seed
		d.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return d
}

// Shuffle randomizes the order of cards in the deck and returns the deck.
func (d *Deck) Shuffle() *Deck {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Pick removes and returns the top n cards.
func (d *Deck) Pick(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("pick %d of %d: %w", n, len(d.cards), ErrNotEnoughCards)
	}
	picked := make([]Card, n)
	copy(picked, d.cards[:n])
	d.cards = d.cards[n:]
	return picked, nil
}

// Replace returns cards to the deck and reshuffles it.
func (d *Deck) Replace(cards []Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int { return len(d.cards) }
