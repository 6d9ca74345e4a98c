package providers

import (
	"context"
	"log"
	"time"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/util"
)

// DefaultProbeOrder is the fixed fallback order tried after the preferred
// channel from config.
var DefaultProbeOrder = []string{"local", "remote"}

const probeTimeout = 3 * time.Second

// OfflineChannel is the channel name Resolve reports when every binding
// failed and the offline null provider was handed out.
const OfflineChannel = "offline"

// Resolve picks the metrics provider for this session and reports which
// channel won. The preferred channel from config is probed first, then the
// fixed fallback order; the first binding that constructs and answers a
// system-info probe wins. Resolution happens once per process: when every
// binding fails the offline provider is returned and the degradation is
// logged, never surfaced as an error.
func Resolve(ctx context.Context, cfg *config.Config, store auth.Store) (domain.MetricsProvider, string) {
	tried := map[string]bool{}
	order := make([]string, 0, len(DefaultProbeOrder)+1)
	if preferred := util.NormalizeKey(cfg.Channel); preferred != "" {
		order = append(order, preferred)
		tried[preferred] = true
	}
	for _, name := range DefaultProbeOrder {
		if !tried[name] {
			order = append(order, name)
			tried[name] = true
		}
	}

	for _, name := range order {
		provider, err := Get(name, cfg, store)
		if err != nil {
			log.Printf("channel %s unavailable: %v", name, err)
			continue
		}

		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		_, err = provider.GetSystemInfo(probeCtx)
		cancel()
		if err != nil {
			log.Printf("channel %s failed probe: %v", name, err)
			continue
		}

		return provider, name
	}

	log.Printf("no metrics channel available, running offline")
	return NewOfflineProvider(), OfflineChannel
}
