package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/cribguess/internal/adapters/http/api"
	"github.com/okian/cribguess/internal/adapters/terminal"
	app "github.com/okian/cribguess/internal/app"
	"github.com/okian/cribguess/internal/config"
	"github.com/okian/cribguess/internal/domain/cards"
	"github.com/okian/cribguess/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, cfg, os.Stdin, os.Stdout, loggerInstance); err != nil {
		loggerInstance.Error(ctx, "game stopped", logger.Error(err))
		os.Exit(1)
	}
}

// run plays one session until input ends or ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log logger.Logger) error {
	deckOpts := []cards.Option{}
	if cfg.Seed != 0 {
		deckOpts = append(deckOpts, cards.WithSeed(cfg.Seed))
	}

	game := app.New(
		app.WithLogger(log),
		app.WithDealer(cards.NewDeck(deckOpts...).Shuffle()),
	)
	log.Info(ctx, "game session started", logger.String("session", game.SessionID()))

	if cfg.MetricsAddr != "" {
		srv := startStatsServer(ctx, cfg.MetricsAddr, game, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(ctx, "stats server shutdown failed", logger.Error(err))
			}
		}()
	}

	repl := terminal.New(game, in, out,
		terminal.WithPrompt(cfg.Prompt),
		terminal.WithHelpOnStart(cfg.ShowHelp),
		terminal.WithLogger(log),
	)
	if err := repl.Run(ctx); err != nil {
		return err
	}

	log.Info(ctx, "game session ended",
		logger.Int("best_streak", game.BestStreak()),
		logger.Any("stats", game.GetStats()),
	)
	return nil
}

// startStatsServer serves /healthz, /stats and /metrics in the background.
func startStatsServer(ctx context.Context, addr string, stats api.StatsProvider, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	api.NewServer(stats, api.WithLogger(log)).Register(ctx, mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting stats server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "stats server failed", logger.String("addr", addr), logger.Error(err))
		}
	}()
	return srv
}
