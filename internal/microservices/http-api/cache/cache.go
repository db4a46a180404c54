package cache

import (
	"context"
	"fmt"
)

// Store caches JSON-encodable list responses. Implementations must be safe for concurrent use.
//
// Entries are never deleted one by one. Each key belongs to a scope, and readers put the
// scope's current generation into the key. Bump retires a whole scope at once: a reader
// that loaded before the bump can only write under the old generation, which nobody reads again.
type Store interface {
	// GetJSON decodes the cached value into dst. ok is false on a miss.
	GetJSON(ctx context.Context, key string, dst any) (ok bool, err error)
	SetJSON(ctx context.Context, key string, value any) error
	// Generation returns the current generation of scope, 0 if it was never bumped.
	Generation(ctx context.Context, scope string) (int64, error)
	Bump(ctx context.Context, scopes ...string) error
	Close() error
}

// Scopes
const (
	GenresScope = "genres"
	MoviesScope = "movies"
)

// Keys
const (
	GenresKey = "genres:all"
	MoviesKey = "movies:all"
)

func MoviesByGenreKey(genreID int64) string {
	return fmt.Sprintf("movies:genre:%d", genreID)
}

// Versioned is key as stored under generation gen.
func Versioned(key string, gen int64) string {
	return fmt.Sprintf("%s@%d", key, gen)
}

// Noop is used when no redis URL is configured: every read misses.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any) error { return nil }
func (Noop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Noop) Bump(context.Context, ...string) error { return nil }
func (Noop) Close() error { return nil }
