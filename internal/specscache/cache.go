// Package specscache caches hardware specs per channel with
// stale-while-revalidate semantics. Specs are static for a host, so a
// cached copy keeps one-shot commands instant while a background refresh
// keeps it honest across hardware changes.
package specscache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sysdash/internal/domain"
)

const (
	defaultFreshTTL = time.Hour
	defaultMaxStale = 24 * time.Hour
	refreshTimeout  = 30 * time.Second

	appDir = "sysdash"
)

// FetchFunc produces fresh specs on a cache miss or refresh.
type FetchFunc func(ctx context.Context) (*domain.HardwareSpecs, error)

// entry wraps cached specs with fetch metadata.
type entry struct {
	Specs     *domain.HardwareSpecs `json:"specs"`
	FetchedAt time.Time             `json:"fetched_at"`
}

// Cache is a file-backed specs cache, one JSON entry per channel.
type Cache struct {
	dir      string
	freshTTL time.Duration
	maxStale time.Duration
}

// New returns a cache rooted at dir with default TTLs.
func New(dir string) *Cache {
	return &Cache{dir: dir, freshTTL: defaultFreshTTL, maxStale: defaultMaxStale}
}

// NewDefault returns a cache rooted at the OS user cache dir.
func NewDefault() *Cache {
	base, err := os.UserCacheDir()
	if err != nil {
		return New("")
	}
	return New(filepath.Join(base, appDir))
}

// WithTTLs returns a cache rooted at dir with custom TTLs. Intended for testing.
func WithTTLs(dir string, freshTTL, maxStale time.Duration) *Cache {
	return &Cache{dir: dir, freshTTL: freshTTL, maxStale: maxStale}
}

// GetOrFetch returns the specs for a channel using stale-while-revalidate
// semantics: fresh entries are served directly, stale-but-usable entries are
// served while a background refresh runs, and anything older is refetched
// inline. A nil or unrooted cache degrades to a plain fetch.
func (c *Cache) GetOrFetch(ctx context.Context, channel string, fetch FetchFunc) (*domain.HardwareSpecs, error) {
	if c == nil || c.dir == "" {
		return fetch(ctx)
	}

	cached, ok := c.read(channel)
	if !ok || cached.FetchedAt.IsZero() {
		return c.fetchAndStore(ctx, channel, fetch)
	}

	age := time.Since(cached.FetchedAt)
	switch {
	case age < 0:
		return c.fetchAndStore(ctx, channel, fetch)
	case age <= c.freshTTL:
		return cached.Specs, nil
	case c.maxStale <= 0 || age <= c.maxStale:
		go func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()
			_, _ = c.fetchAndStore(refreshCtx, channel, fetch)
		}()
		return cached.Specs, nil
	default:
		return c.fetchAndStore(ctx, channel, fetch)
	}
}

// Invalidate removes the cached entry for a channel.
func (c *Cache) Invalidate(channel string) error {
	if c == nil || c.dir == "" {
		return nil
	}
	err := os.Remove(c.pathFor(channel))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *Cache) fetchAndStore(ctx context.Context, channel string, fetch FetchFunc) (*domain.HardwareSpecs, error) {
	specs, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.write(channel, entry{Specs: specs, FetchedAt: time.Now()})
	return specs, nil
}

func (c *Cache) read(channel string) (entry, bool) {
	data, err := os.ReadFile(c.pathFor(channel))
	if err != nil {
		return entry{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.Specs == nil {
		return entry{}, false
	}
	return e, true
}

// write is best effort; a failed cache write never fails the fetch.
func (c *Cache) write(channel string, e entry) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.pathFor(channel), data, 0o644)
}

func (c *Cache) pathFor(channel string) string {
	return filepath.Join(c.dir, "specs-"+sanitizeKey(channel)+".json")
}

// sanitizeKey keeps cache file names path-safe.
func sanitizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "default"
	}
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
