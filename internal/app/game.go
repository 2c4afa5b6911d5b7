// Package game runs the guessing turns: it deals hands, routes each guess
// to the right evaluator and keeps the streak.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/cribguess/internal/domain/cards"
	"github.com/okian/cribguess/internal/domain/guess"
	"github.com/okian/cribguess/internal/domain/scoring"
	"github.com/okian/cribguess/pkg/logger"
	"github.com/okian/cribguess/pkg/metrics"
)

// cardsPerTurn is the starter plus four hand cards.
const cardsPerTurn = 5

// Dealer supplies the cards for each turn. *cards.Deck implements it.
type Dealer interface {
	// Pick removes and returns n cards.
	Pick(n int) ([]cards.Card, error)
	// Replace returns cards to the dealer.
	Replace(cs []cards.Card)
}

// Recorder receives game metrics. *metrics.Manager implements it.
type Recorder interface {
	RecordGuess(kind, outcome string)
	RecordGuessNotUnderstood()
	RecordMeldMismatch(meldType string, delta int)
	RecordGuessLatency(seconds float64)
	RecordHandDealt(score int)
	UpdateStreak(streak, best int)
}

// TurnState is the state carried from turn to turn.
type TurnState struct {
	Hand   *scoring.Hand
	Streak int
}

// Game owns the turn state of one player session.
type Game struct {
	mu sync.RWMutex

	dealer  Dealer
	metrics Recorder
	logger  logger.Logger

	sessionID string
	state     TurnState

	// Session statistics
	bestStreak    int
	handsDealt    int
	outcomes      map[string]int
	notUnderstood int
}

// Option applies a configuration option to the Game.
type Option func(*Game)

// WithDealer sets the source of cards.
func WithDealer(d Dealer) Option {
	return func(g *Game) {
		if d != nil {
			g.dealer = d
		}
	}
}

// WithLogger sets a custom logger for the game.
func WithLogger(l logger.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r Recorder) Option {
	return func(g *Game) {
		if r != nil {
			g.metrics = r
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.sessionID = id
		}
	}
}

// New constructs a Game. Without WithDealer it plays from a freshly
// shuffled deck.
func New(opts ...Option) *Game {
	g := &Game{
		sessionID: uuid.NewString(),
		outcomes:  make(map[string]int),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.dealer == nil {
		g.dealer = cards.NewDeck().Shuffle()
	}
	if g.metrics == nil {
		g.metrics = metrics.Default()
	}
	if g.logger == nil {
		g.logger = logger.Get()
	}
	g.logger = g.logger.With(logger.String("session", g.sessionID))

	return g
}

// PrepNextTurn deals a fresh hand into the turn state. The first card
// picked is the starter.
func (g *Game) PrepNextTurn(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	picked, err := g.dealer.Pick(cardsPerTurn)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	defer g.dealer.Replace(picked)
	if len(picked) != cardsPerTurn {
		return fmt.Errorf("deal: got %d cards: %w", len(picked), cards.ErrNotEnoughCards)
	}

	hand, err := scoring.NewHand(picked[0], picked[1:])
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	g.state.Hand = hand
	g.handsDealt++

	score := hand.ScoreBoard().Score
	g.metrics.RecordHandDealt(score)
	g.logger.Debug(ctx, "dealt hand",
		logger.String("starter", hand.Starter().String()),
		logger.Any("cards", hand.Cards()),
		logger.Int("score", score),
	)
	return nil
}

// HandleGuess judges input against the current hand. Input that is neither
// digit words nor valid meld notation yields an error wrapping
// guess.ErrNotUnderstood; the streak is left alone in that case.
func (g *Game) HandleGuess(ctx context.Context, input string) (guess.Result, error) {
	start := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Hand == nil {
		return nil, ErrNoHand
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return nil, g.recordNotUnderstood(ctx, input, guess.ErrNotUnderstood)
	}

	board := g.state.Hand.ScoreBoard()
	kind := guess.Classify(words)

	var (
		res guess.Result
		err error
	)
	switch kind {
	case guess.KindNumeric:
		res, err = guess.EvaluateNumeric(words, board.Score)
	case guess.KindNotation:
		res, err = g.judgeNotation(words, board)
	}
	if err != nil {
		if errors.Is(err, guess.ErrNotUnderstood) {
			return nil, g.recordNotUnderstood(ctx, input, err)
		}
		return nil, err
	}

	switch res.(type) {
	case guess.Correct:
		g.state.Streak++
		if g.state.Streak > g.bestStreak {
			g.bestStreak = g.state.Streak
		}
	case guess.Incorrect:
		g.state.Streak = 0
	default:
		panic(fmt.Sprintf("game: unexpected guess result %T", res))
	}

	g.outcomes[res.Outcome()]++
	g.metrics.RecordGuess(kind.String(), res.Outcome())
	g.metrics.UpdateStreak(g.state.Streak, g.bestStreak)
	g.metrics.RecordGuessLatency(time.Since(start).Seconds())
	g.logger.Debug(ctx, "guess resolved",
		logger.String("input", input),
		logger.String("kind", kind.String()),
		logger.String("outcome", res.Outcome()),
		logger.Int("want", board.Score),
		logger.Int("streak", g.state.Streak),
	)
	return res, nil
}

func (g *Game) judgeNotation(words []string, board scoring.ScoreBoard) (guess.Result, error) {
	tokens, err := guess.Tokenize(strings.Join(words, ""))
	if err != nil {
		return nil, err
	}

	res, d := guess.Judge(tokens, board)
	for meldType, delta := range d.Deltas {
		g.metrics.RecordMeldMismatch(meldType, delta)
	}
	return res, nil
}

func (g *Game) recordNotUnderstood(ctx context.Context, input string, err error) error {
	g.notUnderstood++
	g.metrics.RecordGuessNotUnderstood()
	g.logger.Debug(ctx, "guess not understood", logger.String("input", input), logger.Error(err))
	return err
}

// Streak returns the current run of correct guesses.
func (g *Game) Streak() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Streak
}

// BestStreak returns the longest streak of the session.
func (g *Game) BestStreak() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.bestStreak
}

// CurrentHand returns the hand being guessed, or nil before the first deal.
func (g *Game) CurrentHand() *scoring.Hand {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Hand
}

// SessionID identifies this game in logs and stats.
func (g *Game) SessionID() string { return g.sessionID }

// GetStats returns session statistics.
func (g *Game) GetStats() map[string]interface{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	outcomes := make(map[string]int, len(g.outcomes))
	for k, v := range g.outcomes {
		outcomes[k] = v
	}

	return map[string]interface{}{
		"sessionId":     g.sessionID,
		"streak":        g.state.Streak,
		"bestStreak":    g.bestStreak,
		"handsDealt":    g.handsDealt,
		"guesses":       outcomes,
		"notUnderstood": g.notUnderstood,
	}
}
