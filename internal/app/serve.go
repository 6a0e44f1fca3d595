package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/chosung-quiz/internal/seeder/archive"
	"github.com/heartmarshall/chosung-quiz/internal/transport/middleware"
	"github.com/heartmarshall/chosung-quiz/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// Handler builds the HTTP handler for the quiz API.
func (a *App) Handler(limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Quiz:    rest.NewQuizHandler(a.Quiz, a.Logger),
		Health:  rest.NewHealthHandler(a, a.Config.Archive.Path, BuildVersion()),
		Limiter: limiter,
		Server:  a.Config.Server,
		CORS:    a.Config.CORS,
		Logger:  a.Logger,
	})
}

// Seed runs the startup ingest and logs the pool size around it. It never
// fails: an absent store or archive only shows up in the log.
func (a *App) Seed(ctx context.Context) {
	before := a.Quiz.PoolSize(ctx)
	a.Logger.Info("startup seeding", slog.Int("pool_size", before))

	res := a.Quiz.Ingest(ctx, a.Config.Quiz.SeedLimit)

	a.Logger.Info("startup seeding done",
		slog.Int("saved", res.Saved),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
		slog.String("pass", res.Pass.Outcome()),
		slog.Int("pool_size", a.Quiz.PoolSize(ctx)),
	)
}

// Serve seeds the pool (unless disabled), then serves HTTP until ctx is
// canceled. With archive.watch set, archive changes purge the search cache.
func (a *App) Serve(ctx context.Context) error {
	if !a.Config.Quiz.SkipStartupSeed {
		a.Seed(ctx)
	}

	limiter := middleware.NewRateLimiter(limiterCleanupInterval)
	defer limiter.Stop()

	eg, egctx := errgroup.WithContext(ctx)

	srvCfg := a.Config.Server
	srv := &http.Server{
		Addr:         net.JoinHostPort(srvCfg.Host, strconv.Itoa(srvCfg.Port)),
		Handler:      a.Handler(limiter),
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		IdleTimeout:  srvCfg.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
	}

	if a.Config.Archive.Watch {
		eg.Go(func() error {
			a.watchArchive(egctx)
			return nil
		})
	}

	eg.Go(func() error {
		a.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
		defer cancel()

		a.Logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchArchive purges the search cache whenever the archive file changes.
// A watcher that cannot start is logged and the server keeps running.
func (a *App) watchArchive(ctx context.Context) {
	w, err := archive.NewWatcher(a.Logger, a.Config.Archive.Path)
	if err != nil {
		a.Logger.Error("archive watcher disabled", slog.String("error", err.Error()))
		return
	}
	if err := w.Run(ctx, a.Quiz.InvalidateSearchCache); err != nil {
		a.Logger.Error("archive watcher stopped", slog.String("error", err.Error()))
	}
}
