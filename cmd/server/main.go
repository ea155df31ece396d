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

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/config"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/handlers"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/loader"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/routing"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/store"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; the default writes JSON to stderr.
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
	log.Info().Msg("Server stopped")
}

// setupLogger configures the global zerolog logger: pretty console logs in
// development, JSON in production.
func setupLogger(cfg config.Config, out io.Writer) {
	level, err := cfg.Level()
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.JSONLogs() {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	})
}

// loadDataset performs the single load attempt and records its outcome in s.
// A failed load leaves the server running with the error page.
func loadDataset(ctx context.Context, l *loader.Loader, s *store.Store) {
	ds, err := l.Load(ctx)
	if err != nil {
		log.Error().Err(err).Str("source", l.Source()).Msg("Failed to load plant data")
		_ = s.Fail(err)
		return
	}
	if err := s.Populate(ds); err != nil {
		log.Error().Err(err).Msg("Failed to store plant data")
		return
	}
	stats := s.Stats()
	log.Info().
		Str("source", l.Source()).
		Int("plants", stats.Plants).
		Int("soil_entries", stats.SoilEntries).
		Int("moisture_entries", stats.MoistureEntries).
		Msg("Plant data loaded")
}

func run(ctx context.Context, cfg config.Config) error {
	log.Info().Msg("Starting Plantenwijzer")

	if cfg.OTLPEndpoint != "" {
		tp, err := tracing.Init(ctx, cfg.OTLPEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("Failed to flush traces")
			}
		}()
		log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("Tracing enabled")
	}

	s := store.New()
	loadDataset(ctx, loader.New(loader.Options{
		Source:  cfg.DataSource,
		Timeout: cfg.FetchTimeout,
	}), s)

	h := handlers.NewHandler(s, handlers.Config{PublicURL: cfg.PublicURL})
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: routing.SetupRouter(routing.Config{
			Handlers:  h,
			Logger:    log.Logger,
			RateLimit: cfg.RateLimit,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return metrics.StartCollector(gctx, statsSource(s), cfg.MetricsInterval)
	})

	g.Go(func() error {
		log.Info().
			Str("address", srv.Addr).
			Str("public_url", cfg.PublicURL).
			Str("data_source", cfg.DataSource).
			Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func statsSource(s *store.Store) metrics.StatsSource {
	return metrics.StatsSource{
		Loaded:          s.Ready,
		PlantCount:      func() int { return s.Stats().Plants },
		SoilEntries:     func() int { return s.Stats().SoilEntries },
		MoistureEntries: func() int { return s.Stats().MoistureEntries },
	}
}
