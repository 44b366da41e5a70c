package credential

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
)

// CachedStore fronts another store with an expiring LRU. Only hits are
// cached, so a credential added to the inner store is seen on the next Get.
type CachedStore struct {
	inner Store
	cache *expirable.LRU[string, string]
}

// NewCachedStore wraps inner. Non-positive size or ttl use the defaults.
func NewCachedStore(inner Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner: inner,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (s *CachedStore) Get(ctx context.Context, name string) (string, error) {
	key := normalizeName(name)
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v, err := s.inner.Get(ctx, name)
	if err != nil {
		return "", err
	}
	s.cache.Add(key, v)
	return v, nil
}

func (s *CachedStore) Set(ctx context.Context, name, value string) error {
	s.cache.Remove(normalizeName(name))
	return s.inner.Set(ctx, name, value)
}

func (s *CachedStore) Delete(ctx context.Context, name string) error {
	s.cache.Remove(normalizeName(name))
	return s.inner.Delete(ctx, name)
}
