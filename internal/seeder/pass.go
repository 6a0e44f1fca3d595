// Package seeder runs bounded passes over the dictionary archive.
package seeder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/archive"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/krdict"
)

// Pass kinds, used as log and metric labels.
const (
	KindIngest = "ingest"
	KindSearch = "search"
)

// Visitor handles one archive entry. A returned error counts the entry as a
// parse failure; the pass continues with the next entry.
type Visitor func(ctx context.Context, entry archive.Entry) (krdict.Stats, error)

// PassResult holds the outcome of one archive pass. A pass always produces
// exactly one result, complete or partial.
type PassResult struct {
	archive.Stats
	ParseFailures int
	Items         int
	Candidates    int
	TimedOut      bool
	Missing       bool
	Err           error
	Duration      time.Duration
}

// Outcome classifies the result for metrics and logs.
func (r PassResult) Outcome() string {
	switch {
	case r.Missing:
		return "missing"
	case r.Err != nil:
		return "failed"
	case r.TimedOut:
		return "timeout"
	default:
		return "complete"
	}
}

// Runner executes archive passes against one archive file.
type Runner struct {
	log *slog.Logger
	cfg Config
}

// NewRunner creates a Runner.
func NewRunner(logger *slog.Logger, cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{
		log: logger.With("service", "seeder"),
		cfg: cfg,
	}, nil
}

// Run streams every JSON entry of the archive through visit, bounded by
// timeout (the configured pass timeout when timeout <= 0). A missing
// archive, an unreadable archive or an expired budget still yield a result;
// whatever visit accumulated up to that point stays valid.
func (r *Runner) Run(ctx context.Context, kind string, timeout time.Duration, visit Visitor) PassResult {
	if timeout <= 0 {
		timeout = r.cfg.PassTimeout
	}

	start := time.Now()
	passCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := r.pass(passCtx, visit)
	if result.Err == nil && errors.Is(passCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
	}
	result.Duration = time.Since(start)

	r.logResult(kind, result)
	recordPass(kind, result)
	return result
}

func (r *Runner) pass(ctx context.Context, visit Visitor) PassResult {
	a, err := archive.Open(r.log, r.cfg.ArchivePath, r.cfg.MaxEntryBytes)
	if err != nil {
		if errors.Is(err, domain.ErrMissingArchive) {
			return PassResult{Missing: true}
		}
		return PassResult{Err: err}
	}
	defer a.Close()

	var result PassResult
	for entry := range a.Entries(ctx) {
		stats, err := visit(ctx, entry)
		result.Items += stats.Items
		result.Candidates += stats.Candidates
		if err != nil {
			result.ParseFailures++
			r.log.Warn("skip archive entry",
				slog.String("entry", entry.Name),
				slog.String("error", err.Error()),
			)
		}
	}
	result.Stats = a.Stats()
	return result
}

func (r *Runner) logResult(kind string, res PassResult) {
	switch {
	case res.Missing:
		r.log.Warn("archive not found",
			slog.String("kind", kind),
			slog.String("path", r.cfg.ArchivePath),
		)
	case res.Err != nil:
		r.log.Error("archive pass failed",
			slog.String("kind", kind),
			slog.String("error", res.Err.Error()),
		)
	default:
		r.log.Info("archive pass completed",
			slog.String("kind", kind),
			slog.Bool("timed_out", res.TimedOut),
			slog.Int("entries", res.EntriesSeen),
			slog.Int("json_entries", res.JSONEntries),
			slog.Int("open_failures", res.OpenFailures),
			slog.Int("parse_failures", res.ParseFailures),
			slog.Int("items", res.Items),
			slog.Int("candidates", res.Candidates),
			slog.Duration("duration", res.Duration),
		)
	}
}
