package directory

import (
	"context"
	"sync"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
)

// DefaultResolverTTL is the default TTL for resolved display names
const DefaultResolverTTL = 45 * time.Second

type cacheEntry struct {
	name      string
	expiresAt time.Time
}

// Resolver resolves user IDs to display names from the local user
// directory, with a short-lived cache in front. An unknown ID resolves to
// an empty string so read paths degrade instead of failing.
type Resolver struct {
	repo interfaces.Repository
	ttl  time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type ResolverOption func(*Resolver)

// WithResolverTTL sets the TTL for the display name cache
func WithResolverTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

func NewResolver(repo interfaces.Repository, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		repo:  repo,
		ttl:   DefaultResolverTTL,
		cache: make(map[string]cacheEntry),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var _ interfaces.NameResolver = &Resolver{}

// ResolveName returns the display name of the given user, or "" when the
// directory has no entry for it.
func (r *Resolver) ResolveName(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}

	now := time.Now()

	r.mu.RLock()
	entry, ok := r.cache[userID]
	r.mu.RUnlock()
	if ok && entry.expiresAt.After(now) {
		return entry.name
	}

	user, err := r.repo.User().Get(ctx, userID)
	if err != nil {
		// Unknown or unreadable user: don't cache, don't fail the view
		return ""
	}

	r.mu.Lock()
	r.cache[userID] = cacheEntry{
		name:      user.Name,
		expiresAt: now.Add(r.ttl),
	}
	r.mu.Unlock()

	return user.Name
}
