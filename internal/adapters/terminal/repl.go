package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/okian/cribguess/internal/domain/guess"
	"github.com/okian/cribguess/internal/domain/scoring"
	"github.com/okian/cribguess/pkg/logger"
)

const defaultPrompt = "Your guess? "

// Game is the turn engine the loop drives.
type Game interface {
	PrepNextTurn(ctx context.Context) error
	HandleGuess(ctx context.Context, input string) (guess.Result, error)
	CurrentHand() *scoring.Hand
	Streak() int
}

// REPL reads guesses from in and writes the game to out.
type REPL struct {
	game     Game
	in       io.Reader
	out      io.Writer
	prompt   string
	showHelp bool
	logger   logger.Logger
}

// Option applies a configuration option to the REPL.
type Option func(*REPL)

// WithPrompt sets the text printed before each guess.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		if prompt != "" {
			r.prompt = prompt
		}
	}
}

// WithHelpOnStart prints the help text before the first hand.
func WithHelpOnStart(show bool) Option {
	return func(r *REPL) {
		r.showHelp = show
	}
}

// WithLogger sets a custom logger for the loop.
func WithLogger(l logger.Logger) Option {
	return func(r *REPL) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a REPL over game.
func New(game Game, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		game:   game,
		in:     in,
		out:    out,
		prompt: defaultPrompt,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get()
	}
	return r
}

// Run plays until the input ends or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	if r.showHelp {
		r.println(HelpText())
	}
	if err := r.game.PrepNextTurn(ctx); err != nil {
		return fmt.Errorf("first deal: %w", err)
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := r.readLines(readCtx)

	showHand := true
	for {
		if showHand {
			r.println(HandString(r.game.CurrentHand()))
			showHand = false
		}
		r.print(r.prompt)

		var line string
		select {
		case <-ctx.Done():
			r.bye()
			return nil
		case l, ok := <-lines:
			if !ok {
				r.bye()
				return <-readErr
			}
			line = strings.TrimSpace(l)
		}

		switch line {
		case "":
			continue
		case "?", "help":
			r.println(HelpText())
			continue
		}

		resolved, err := r.handle(ctx, line)
		if err != nil {
			return err
		}
		if !resolved {
			continue
		}

		r.println(ScoreString(r.game.CurrentHand().ScoreBoard()))
		r.println("")
		r.println(separator())

		if err := r.game.PrepNextTurn(ctx); err != nil {
			return fmt.Errorf("next deal: %w", err)
		}
		showHand = true
	}
}

// handle judges one guess and prints the verdict. It reports false when the
// guess was not understood and the same hand should be guessed again.
func (r *REPL) handle(ctx context.Context, line string) (bool, error) {
	res, err := r.game.HandleGuess(ctx, line)
	if errors.Is(err, guess.ErrNotUnderstood) {
		r.println("\n❓ I couldn't understand you, sorry!\n")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("guess %q: %w", line, err)
	}

	switch v := res.(type) {
	case guess.Correct:
		r.println(fmt.Sprintf("\n⭐️ You got it! Your streak is now: %d\n", r.game.Streak()))
	case guess.Incorrect:
		msg := "\n❌ Nope!"
		if v.Brief != "" {
			msg += " " + v.Brief
		}
		r.println(msg + "\n")
		if v.Details != "" {
			r.println(v.Details + "\n")
		}
	default:
		return false, fmt.Errorf("unexpected guess result %T", res)
	}
	return true, nil
}

// readLines feeds input lines to a channel so Run can also watch ctx. The
// error channel yields the scanner error once lines is closed. The reader
// stops sending once ctx is done.
func (r *REPL) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.logger.Error(ctx, "reading input failed", logger.Error(err))
			errc <- fmt.Errorf("read input: %w", err)
			return
		}
		errc <- nil
	}()

	return lines, errc
}

func (r *REPL) bye() {
	r.println("\nOkay, have fun, bye!")
}

func (r *REPL) print(s string) {
	_, _ = io.WriteString(r.out, s)
}

func (r *REPL) println(s string) {
	_, _ = io.WriteString(r.out, s+"\n")
}
