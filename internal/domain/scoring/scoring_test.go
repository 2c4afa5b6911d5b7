package scoring_test

import (
	"errors"
	"testing"

	"github.com/okian/cribguess/internal/domain/cards"
	scoring "github.com/okian/cribguess/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func card(rank cards.Rank, suit cards.Suit) cards.Card {
	return cards.Card{Rank: rank, Suit: suit}
}

func countTypes(hits []scoring.Hit) map[string]int {
	counts := map[string]int{}
	for _, h := range hits {
		counts[h.Type]++
	}
	return counts
}

func TestNewHand(t *testing.T) {
	Convey("Given cards for a hand", t, func() {
		starter := card(5, cards.Hearts)

		Convey("When fewer than four hand cards are given", func() {
			_, err := scoring.NewHand(starter, []cards.Card{card(2, cards.Clubs)})

			Convey("Then it should fail with ErrInvalidHand", func() {
				So(errors.Is(err, scoring.ErrInvalidHand), ShouldBeTrue)
			})
		})

		Convey("When a card appears twice", func() {
			_, err := scoring.NewHand(starter, []cards.Card{
				card(5, cards.Hearts), card(2, cards.Clubs), card(3, cards.Clubs), card(4, cards.Clubs),
			})

			Convey("Then it should fail with ErrInvalidHand", func() {
				So(errors.Is(err, scoring.ErrInvalidHand), ShouldBeTrue)
			})
		})

		Convey("When a rank is out of range", func() {
			_, err := scoring.NewHand(starter, []cards.Card{
				card(0, cards.Hearts), card(2, cards.Clubs), card(3, cards.Clubs), card(4, cards.Clubs),
			})

			Convey("Then it should fail with ErrInvalidHand", func() {
				So(errors.Is(err, scoring.ErrInvalidHand), ShouldBeTrue)
			})
		})

		Convey("When the hand is valid", func() {
			rest := []cards.Card{card(2, cards.Clubs), card(4, cards.Diamonds), card(6, cards.Hearts), card(8, cards.Spades)}
			hand, err := scoring.NewHand(starter, rest)

			Convey("Then it exposes its cards", func() {
				So(err, ShouldBeNil)
				So(hand.Starter(), ShouldResemble, starter)
				So(hand.Cards(), ShouldResemble, rest)
			})

			Convey("And returned slices are copies", func() {
				hand.Cards()[0] = card(cards.King, cards.Spades)
				So(hand.Cards()[0], ShouldResemble, rest[0])
			})
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given the 29 hand", t, func() {
		hand, err := scoring.NewHand(card(5, cards.Hearts), []cards.Card{
			card(5, cards.Clubs), card(5, cards.Diamonds), card(5, cards.Spades), card(cards.Jack, cards.Hearts),
		})
		So(err, ShouldBeNil)
		board := hand.ScoreBoard()

		Convey("Then it scores 29", func() {
			So(board.Score, ShouldEqual, 29)
		})

		Convey("And it lists eight fifteens, a double pair royal and nobs", func() {
			counts := countTypes(board.Hits)
			So(counts[scoring.TypeFifteen], ShouldEqual, 8)
			So(counts[scoring.TypeDoublePairRoyal], ShouldEqual, 1)
			So(counts[scoring.TypeNobs], ShouldEqual, 1)
			So(len(board.Hits), ShouldEqual, 10)
		})
	})

	Convey("Given a hand with nothing in it", t, func() {
		board := scoring.Score(card(10, cards.Clubs), []cards.Card{
			card(2, cards.Clubs), card(4, cards.Diamonds), card(6, cards.Hearts), card(8, cards.Spades),
		})

		Convey("Then it scores zero with no hits", func() {
			So(board.Score, ShouldEqual, 0)
			So(board.Hits, ShouldBeEmpty)
		})
	})

	Convey("Given a double run", t, func() {
		board := scoring.Score(card(cards.King, cards.Clubs), []cards.Card{
			card(3, cards.Clubs), card(4, cards.Diamonds), card(4, cards.Hearts), card(5, cards.Spades),
		})

		Convey("Then each run combination is its own hit", func() {
			So(board.Score, ShouldEqual, 10)
			So(board.Hits, ShouldResemble, []scoring.Hit{
				{Type: scoring.TypeFifteen, Score: 2},
				{Type: scoring.TypePair, Score: 2},
				{Type: scoring.TypeRun3, Score: 3},
				{Type: scoring.TypeRun3, Score: 3},
			})
		})
	})

	Convey("Given a run of five", t, func() {
		board := scoring.Score(card(5, cards.Clubs), []cards.Card{
			card(cards.Ace, cards.Clubs), card(2, cards.Diamonds), card(3, cards.Hearts), card(4, cards.Spades),
		})

		Convey("Then only the longest run counts", func() {
			counts := countTypes(board.Hits)
			So(counts[scoring.TypeRun5], ShouldEqual, 1)
			So(counts[scoring.TypeRun4], ShouldEqual, 0)
			So(counts[scoring.TypeRun3], ShouldEqual, 0)
			So(counts[scoring.TypeFifteen], ShouldEqual, 1)
			So(board.Score, ShouldEqual, 7)
		})
	})

	Convey("Given four hearts in hand", t, func() {
		rest := []cards.Card{card(2, cards.Hearts), card(4, cards.Hearts), card(6, cards.Hearts), card(8, cards.Hearts)}

		Convey("When the starter is another suit", func() {
			board := scoring.Score(card(cards.King, cards.Clubs), rest)

			Convey("Then it is a hand flush", func() {
				So(board.Hits, ShouldResemble, []scoring.Hit{{Type: scoring.TypeHandFlush, Score: 4}})
				So(board.Score, ShouldEqual, 4)
			})
		})

		Convey("When the starter is also a heart", func() {
			board := scoring.Score(card(10, cards.Hearts), rest)

			Convey("Then it is a five card flush", func() {
				So(board.Hits, ShouldResemble, []scoring.Hit{{Type: scoring.TypeFiveCardFlush, Score: 5}})
				So(board.Score, ShouldEqual, 5)
			})
		})
	})

	Convey("Given a flush that includes only the starter's suit in three hand cards", t, func() {
		board := scoring.Score(card(10, cards.Hearts), []cards.Card{
			card(2, cards.Hearts), card(4, cards.Hearts), card(6, cards.Hearts), card(8, cards.Clubs),
		})

		Convey("Then there is no flush", func() {
			So(board.Score, ShouldEqual, 0)
		})
	})

	Convey("Given a hand jack matching the starter suit", t, func() {
		board := scoring.Score(card(8, cards.Hearts), []cards.Card{
			card(cards.Jack, cards.Hearts), card(2, cards.Clubs), card(4, cards.Diamonds), card(6, cards.Spades),
		})

		Convey("Then it scores His Nobs", func() {
			So(board.Hits, ShouldResemble, []scoring.Hit{{Type: scoring.TypeNobs, Score: 1}})
		})
	})

	Convey("Given a starter jack", t, func() {
		board := scoring.Score(card(cards.Jack, cards.Hearts), []cards.Card{
			card(8, cards.Hearts), card(2, cards.Clubs), card(4, cards.Diamonds), card(6, cards.Spades),
		})

		Convey("Then it does not score His Nobs", func() {
			So(countTypes(board.Hits)[scoring.TypeNobs], ShouldEqual, 0)
		})
	})

	Convey("Given three of a kind", t, func() {
		board := scoring.Score(card(cards.King, cards.Clubs), []cards.Card{
			card(7, cards.Hearts), card(7, cards.Clubs), card(7, cards.Diamonds), card(2, cards.Spades),
		})

		Convey("Then it is a pair royal", func() {
			counts := countTypes(board.Hits)
			So(counts[scoring.TypePairRoyal], ShouldEqual, 1)
			So(counts[scoring.TypePair], ShouldEqual, 0)
		})
	})
}
