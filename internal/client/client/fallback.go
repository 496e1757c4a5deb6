package client

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/logging"
)

// FetchWithFallback runs fetch and returns its value, or sample when fetch
// fails. It never fails itself; the fetch error is logged at warn level.
func FetchWithFallback[T any](ctx context.Context, logger logging.Logger, feed string, fetch func(context.Context) (T, error), sample T) T {
	v, err := fetch(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn(ctx, "feed unavailable, using sample data", "feed", feed, "error", err)
		}
		return sample
	}
	return v
}
