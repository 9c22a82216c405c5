package ports

import (
	"context"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

// ReadingStore persists one reading per (identity, day) cache key.
// Get returns domain.ErrReadingNotFound for unknown keys. Put of an
// existing key must not corrupt the store; the first or last write
// winning are both acceptable.
type ReadingStore interface {
	Get(ctx context.Context, key string) (domain.ReadingRecord, error)
	Put(ctx context.Context, rec domain.ReadingRecord) error
}
