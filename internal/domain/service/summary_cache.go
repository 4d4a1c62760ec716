// Package service defines contracts implemented by the infrastructure
// layer.
package service

import (
	"context"
	"time"
)

// SummaryCache caches serialized per-user summary payloads. A nil
// implementation is valid; callers fall back to direct reads.
type SummaryCache interface {
	// Get returns the cached payload for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes the payload stored under key.
	Delete(ctx context.Context, key string) error
}
