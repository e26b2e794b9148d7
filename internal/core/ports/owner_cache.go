package ports

import "context"

// OwnerCache is an optional read-through cache for project ownership
// lookups. Safe to back with Redis: projects are never deleted and
// ownership never transfers, so cached entries cannot go stale in a way
// that affects correctness.
type OwnerCache interface {
	// Get returns the cached owner id and whether the entry was present.
	// Implementations treat backend failures as misses.
	Get(ctx context.Context, projectID string) (string, bool)
	Set(ctx context.Context, projectID, ownerID string)
}
