package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres"
	coupletrepo "github.com/heartmarshall/padagalu-backend/internal/adapter/postgres/couplet"
	wordrepo "github.com/heartmarshall/padagalu-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/padagalu-backend/internal/config"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
	"github.com/heartmarshall/padagalu-backend/internal/observe"
	"github.com/heartmarshall/padagalu-backend/internal/prosody"
	"github.com/heartmarshall/padagalu-backend/internal/service/couplet"
	"github.com/heartmarshall/padagalu-backend/internal/service/word"
	"github.com/heartmarshall/padagalu-backend/internal/transport/middleware"
	"github.com/heartmarshall/padagalu-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	metrics, shutdownTelemetry, err := setupTelemetry(cfg.Metrics)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	words := wordrepo.New(pool)
	couplets := coupletrepo.New(pool)

	wordSvc := word.NewService(logger, words, metrics)
	coupletSvc := couplet.NewService(logger, words, couplets, NewGenerator(cfg.Generator), couplet.Limits{
		DefaultTarget: cfg.Generator.DefaultTarget,
		DefaultCount:  cfg.Generator.DefaultCount,
		MaxCount:      cfg.Generator.MaxCount,
		MaxTarget:     cfg.Generator.MaxTarget,
	}, metrics)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.Handler()
	}

	handler := NewRouter(RouterDeps{
		Health:         rest.NewHealthHandler(pool, wordSvc, Version),
		Words:          rest.NewWordHandler(wordSvc, logger),
		Prosody:        rest.NewProsodyHandler(prosody.Default()),
		Couplets:       rest.NewCoupletHandler(coupletSvc, logger),
		MetricsHandler: metricsHandler,
		Metrics:        metrics,
		Limiter:        limiter,
		Logger:         logger,
	}, cfg)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewGenerator builds a couplet generator from configuration.
func NewGenerator(cfg config.GeneratorConfig) *generator.Generator {
	return generator.New(
		generator.WithBeam(cfg.BeamWidth, cfg.MaxWords, cfg.SampleSize),
		generator.WithLineCandidates(cfg.LineCandidates),
		generator.WithWordFilter(cfg.MinWordWeight, cfg.MaxWordWeight, cfg.MaxWordRunes),
	)
}

// setupTelemetry installs the OTel providers when metrics are enabled.
// Otherwise instruments are backed by a no-op provider.
func setupTelemetry(cfg config.MetricsConfig) (*observe.Metrics, func(context.Context) error, error) {
	if !cfg.Enabled {
		m, err := observe.NewMetrics(noop.NewMeterProvider())
		if err != nil {
			return nil, nil, fmt.Errorf("create metrics: %w", err)
		}
		return m, func(context.Context) error { return nil }, nil
	}

	providers, err := observe.InitProvider(observe.ProviderConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: Version,
	})
	if err != nil {
		return nil, nil, err
	}
	m, err := observe.NewMetrics(providers.Meter)
	if err != nil {
		_ = providers.Shutdown(context.Background())
		return nil, nil, fmt.Errorf("create metrics: %w", err)
	}
	return m, providers.Shutdown, nil
}
