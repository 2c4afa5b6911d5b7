// Package cards models a standard 52-card deck.
package cards

import "strconv"

// Suit represents the suit of a card.
type Suit string

const (
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
)

// Suits lists every suit in deck order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Symbol returns the glyph used when printing the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is the rank of a card, Ace (1) through King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// faceValue caps the counting value of face cards.
const faceValue = 10

// Valid reports whether r is a real rank.
func (r Rank) Valid() bool { return r >= Ace && r <= King }

// String returns the short label of the rank ("A", "2".."10", "J", "Q", "K").
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the counting value of the card: face cards count 10, aces 1.
func (c Card) Value() int {
	if c.Rank > faceValue {
		return faceValue
	}
	return int(c.Rank)
}

// String renders the card as rank followed by suit symbol, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}
