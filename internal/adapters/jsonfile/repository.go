// Package jsonfile persists the stats document as a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haakusi/momentum/internal/domain"
)

const (
	lockRetryInterval = 100 * time.Millisecond
	lockRetryLimit    = 50
	staleLockAge      = 5 * time.Minute
)

// Repository stores the whole stats document in one file, replaced
// atomically via write-temp-then-rename. An advisory lock file guards the
// load-mutate-store cycle; concurrent runs wait rather than clobber each
// other's updates.
type Repository struct {
	path string
}

// NewRepository creates a repository backed by the given file path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the backing file path.
func (r *Repository) Path() string { return r.path }

// Lock acquires the advisory lock. A lock file older than staleLockAge is
// treated as left over from a crashed run and taken over.
func (r *Repository) Lock(ctx context.Context) (func(), error) {
	lockPath := r.path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create stats directory: %w", err)
	}

	for attempt := 0; attempt < lockRetryLimit; attempt++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create lock file: %w", err)
		}

		if info, statErr := os.Stat(lockPath); statErr == nil && time.Since(info.ModTime()) > staleLockAge {
			os.Remove(lockPath)
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
	return nil, fmt.Errorf("timed out waiting for lock %s", lockPath)
}

// Load reads the persisted document. A missing file is first-run and yields
// a fresh empty document; a file that exists but does not parse is fatal —
// reinitializing here would silently discard all history.
func (r *Repository) Load(ctx context.Context) (*domain.StatsDocument, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewStatsDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats document: %w", err)
	}

	var doc domain.StatsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("stats document %s is malformed: %w", r.path, err)
	}
	normalize(&doc)
	return &doc, nil
}

// Store writes the document to a temp file and renames it over the old one,
// so a failed write leaves the previous state untouched.
func (r *Repository) Store(ctx context.Context, doc *domain.StatsDocument) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats document: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stats document: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace stats document: %w", err)
	}
	return nil
}

// normalize fills in tables a hand-edited or older document may omit.
func normalize(doc *domain.StatsDocument) {
	if doc.Daily == nil {
		doc.Daily = map[string]domain.DayRecord{}
	}
	if doc.Weekly == nil {
		doc.Weekly = map[string]domain.PeriodTotals{}
	}
	if doc.Monthly == nil {
		doc.Monthly = map[string]domain.PeriodTotals{}
	}
	if doc.Yearly == nil {
		doc.Yearly = map[string]domain.PeriodTotals{}
	}
	if doc.Books == nil {
		doc.Books = []domain.Book{}
	}
}
