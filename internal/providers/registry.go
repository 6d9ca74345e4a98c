package providers

import (
	"fmt"
	"sync"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/util"
)

type Factory func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("providers: empty channel name")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("providers: channel %q already registered", name))
	}

	registry[normalizedName] = factory
}

func Get(name string, cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("providers: unknown channel %q", name)
	}

	provider, err := factory(cfg, store)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// Reset clears the channel registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	return names
}
