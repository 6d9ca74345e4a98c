//go:build !linux

package providers

import (
	"fmt"
	"runtime"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
)

// RegisterLocal registers a factory that always fails; local sensor reads
// need procfs, so the binding only works on linux. Resolution falls through
// to the next channel.
func RegisterLocal() {
	Register("local", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return nil, fmt.Errorf("local metrics not supported on %s: %w", runtime.GOOS, domain.ErrChannelUnavailable)
	})
}
