package ports

import (
	"context"

	"github.com/haakusi/momentum/internal/domain"
)

// StatsRepository owns the load-mutate-store lifecycle of the aggregate
// stats document. Store must replace the document atomically; Lock guards
// the whole cycle against a concurrently triggered run.
type StatsRepository interface {
	// Lock acquires an advisory lock on the document. The returned release
	// function must be called once the cycle is finished.
	Lock(ctx context.Context) (release func(), err error)
	// Load reads the persisted document. A missing document yields a fresh
	// empty one; a present but malformed document is an error.
	Load(ctx context.Context) (*domain.StatsDocument, error)
	// Store writes the document back, replacing the previous state whole.
	Store(ctx context.Context, doc *domain.StatsDocument) error
}
