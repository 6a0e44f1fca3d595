// Package archive streams JSON entries out of the dictionary zip archive.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

const jsonSuffix = ".json"

// Entry is one fully read archive entry.
type Entry struct {
	Name string
	Data []byte
}

// Stats counts what happened while iterating an archive.
type Stats struct {
	EntriesSeen  int
	JSONEntries  int
	OpenFailures int
}

// Archive is an opened zip archive. Entries are decompressed one at a time
// while the caller pulls them.
type Archive struct {
	log           *slog.Logger
	zr            *zip.ReadCloser
	maxEntryBytes int64
	stats         Stats
}

// Open opens the archive at path. A missing file returns domain.ErrMissingArchive.
// maxEntryBytes <= 0 disables the entry size guard.
func Open(logger *slog.Logger, path string, maxEntryBytes int64) (*Archive, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingArchive, path)
		}
		return nil, fmt.Errorf("stat archive %s: %w", path, err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	return &Archive{
		log:           logger.With("archive", path),
		zr:            zr,
		maxEntryBytes: maxEntryBytes,
	}, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Stats returns counters accumulated by Entries so far.
func (a *Archive) Stats() Stats {
	return a.stats
}

// Entries yields every readable .json entry in archive order. Other entries
// are skipped without decompression. Entries that cannot be opened, read,
// or exceed the size guard are logged and skipped. Iteration stops early
// when ctx is done.
func (a *Archive) Entries(ctx context.Context) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, f := range a.zr.File {
			if ctx.Err() != nil {
				return
			}
			a.stats.EntriesSeen++

			if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), jsonSuffix) {
				continue
			}
			a.stats.JSONEntries++

			data, err := a.readEntry(ctx, f)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				a.stats.OpenFailures++
				a.log.Warn("skip archive entry", slog.String("entry", f.Name), slog.String("error", err.Error()))
				continue
			}

			if !yield(Entry{Name: f.Name, Data: data}) {
				return
			}
		}
	}
}

func (a *Archive) readEntry(ctx context.Context, f *zip.File) ([]byte, error) {
	if a.maxEntryBytes > 0 && f.UncompressedSize64 > uint64(a.maxEntryBytes) {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit", domain.ErrEntryOpen, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEntryOpen, err)
	}
	defer rc.Close()

	var r io.Reader = ctxReader{ctx: ctx, r: rc}
	if a.maxEntryBytes > 0 {
		r = io.LimitReader(r, a.maxEntryBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", domain.ErrEntryOpen, err)
	}
	if a.maxEntryBytes > 0 && int64(len(data)) > a.maxEntryBytes {
		return nil, fmt.Errorf("%w: entry exceeds %d bytes", domain.ErrEntryOpen, a.maxEntryBytes)
	}
	return data, nil
}

// ctxReader stops a long decompression once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
