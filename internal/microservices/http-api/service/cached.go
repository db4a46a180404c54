package service

import (
	"context"
	"log/slog"

	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/cache"
)

// loadCached serves key from the current generation of scope, falling back to load and
// repopulating the cache. The generation is read before load, so a result that raced
// with a write lands under a retired key. Cache failures are logged and never fail the call.
func loadCached[T any](ctx context.Context, store cache.Store, log *slog.Logger, scope, key string, load func() (T, error)) (T, error) {
	log = logging.WithRequestID(ctx, log)

	gen, err := store.Generation(ctx, scope)
	if err != nil {
		log.Warn("cache_generation_failed", "scope", scope, "error", err.Error())
		return load()
	}
	key = cache.Versioned(key, gen)

	var cached T
	ok, err := store.GetJSON(ctx, key, &cached)
	if err != nil {
		log.Warn("cache_read_failed", "key", key, "error", err.Error())
	} else if ok {
		return cached, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := store.SetJSON(ctx, key, v); err != nil {
		log.Warn("cache_write_failed", "key", key, "error", err.Error())
	}
	return v, nil
}

// invalidate retires everything cached under scopes. Call it after the write committed.
func invalidate(ctx context.Context, store cache.Store, log *slog.Logger, scopes ...string) {
	if err := store.Bump(ctx, scopes...); err != nil {
		logging.WithRequestID(ctx, log).Warn("cache_invalidate_failed", "scopes", scopes, "error", err.Error())
	}
}
