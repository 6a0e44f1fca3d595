package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/chosung-quiz/internal/adapter/memory"
	"github.com/heartmarshall/chosung-quiz/internal/adapter/postgres"
	"github.com/heartmarshall/chosung-quiz/internal/adapter/postgres/quizpool"
	"github.com/heartmarshall/chosung-quiz/internal/adapter/sqlite"
	"github.com/heartmarshall/chosung-quiz/internal/config"
	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder"
	"github.com/heartmarshall/chosung-quiz/internal/service/quiz"
)

// PoolStore is the persistence contract every store driver satisfies.
type PoolStore interface {
	ExistsByWord(ctx context.Context, word string) (bool, error)
	Insert(ctx context.Context, entry domain.PoolEntry) (string, error)
	ListAll(ctx context.Context) ([]domain.PoolEntry, error)
	ClearAll(ctx context.Context) error
}

// App is one wired process: configuration, logger, archive runner and
// quiz service over the configured pool store.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Runner *seeder.Runner
	Quiz   *quiz.Service

	ping    func(ctx context.Context) error
	closers []func()
}

// New opens the pool store selected by cfg.Database.Driver (running
// migrations unless skipped) and wires the quiz service. Driver "none"
// leaves the service without a store.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	runner, err := seeder.NewRunner(logger, seeder.Config{
		ArchivePath:   cfg.Archive.Path,
		PassTimeout:   cfg.Archive.PassTimeout,
		MaxEntryBytes: cfg.Archive.MaxEntryBytes,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Runner = runner
	a.Quiz = quiz.NewService(logger, store, runner, cfg.Quiz)

	logger.Info("application wired",
		slog.String("version", BuildVersion()),
		slog.String("store", cfg.Database.Driver),
		slog.String("archive", cfg.Archive.Path),
	)
	return a, nil
}

func (a *App) openStore(ctx context.Context) (PoolStore, error) {
	db := a.Config.Database
	if !db.HasStore() {
		a.Logger.Warn("pool store not configured; batch, clear and add-word degrade to empty results")
		return nil, nil
	}

	switch db.Driver {
	case config.DriverPostgres:
		if !db.SkipMigrate {
			if err := postgres.Migrate(ctx, db.DSN); err != nil {
				return nil, fmt.Errorf("postgres: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.ping = pool.Ping
		return quizpool.New(pool), nil

	case config.DriverSQLite:
		sqlDB, err := sqlite.Open(ctx, db.DSN)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
		a.ping = sqlDB.PingContext
		if !db.SkipMigrate {
			if err := sqlite.Migrate(ctx, sqlDB); err != nil {
				return nil, fmt.Errorf("sqlite: %w", err)
			}
		}
		return sqlite.New(sqlDB), nil

	case config.DriverMemory:
		a.Logger.Warn("using in-memory pool store; entries are lost on exit")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", db.Driver)
	}
}

// Ping checks the pool store. Drivers without a connection always succeed.
func (a *App) Ping(ctx context.Context) error {
	if a.ping == nil {
		return nil
	}
	return a.ping(ctx)
}

// Close releases store connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Migrate applies the schema for the configured SQL driver without
// wiring the rest of the application.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.DSN)
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return sqlite.Migrate(ctx, db)
	default:
		return domain.NewValidationError("database.driver", fmt.Sprintf("driver %q has no schema", cfg.Driver))
	}
}
