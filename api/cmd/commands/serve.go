package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/baechuer/hbnb-service/internal/application/search"
	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/infrastructure/redis"
	"github.com/baechuer/hbnb-service/internal/transport/http/handlers"
	mw "github.com/baechuer/hbnb-service/internal/transport/http/middleware"
	"github.com/baechuer/hbnb-service/internal/transport/http/router"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// App holds the wired server and everything it must release on exit.
type App struct {
	Config  *config.Config
	Server  *http.Server
	closers []func() error
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zlog.Warn().Err(err).Msg("close failed")
		}
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	app := &App{Config: c}

	// 1) Infrastructure
	be, err := openBackend(ctx, c)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, be.Close)

	pub, pubCloser, err := openPublisher(c)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.closers = append(app.closers, pubCloser.Close)

	deps := map[string]handlers.Pinger{}
	if be.db != nil {
		deps["postgres"] = be.db
	}

	var limiter mw.Limiter
	if c.RLEnabled && c.RedisURL != "" {
		l, err := redis.NewFromURL(ctx, c.RedisURL)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, l.Close)
		limiter = l
		deps["redis"] = l
		zlog.Info().Msg("redis rate limiter ready")
	}

	fallback, err := search.ParseFallbackMode(c.SearchAmenityFallback)
	if err != nil {
		app.Close()
		return nil, err
	}

	// 2) Application
	svc := newService(be.store, pub, c)
	resolver := search.NewResolver(be.store, fallback)

	// 3) Transport
	h := router.NewHandlers(svc, resolver, handlers.NewHealthHandler(deps))

	app.Server = &http.Server{
		Addr:         c.HTTPAddr,
		Handler:      router.New(h, limiter, c),
		ReadTimeout:  c.HTTPReadTimeout,
		WriteTimeout: c.HTTPWriteTimeout,
		IdleTimeout:  c.HTTPIdleTimeout,
	}
	return app, nil
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Error().Err(err).Msg("server crashed")
		}
		return err
	case <-ctx.Done():
	}

	zlog.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return app.Server.Shutdown(shutdownCtx)
}
