package providers

import (
	"context"

	"sysdash/internal/domain"
)

// OfflineProvider is the null binding handed out when no metrics channel
// could be resolved. Every call reports the channel as unavailable so the
// dashboard renders placeholders without ever retrying a backend.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (o *OfflineProvider) GetHardwareSpecs(ctx context.Context) (*domain.HardwareSpecs, error) {
	return nil, domain.ErrChannelUnavailable
}

func (o *OfflineProvider) GetSystemInfo(ctx context.Context) (*domain.MetricSnapshot, error) {
	return nil, domain.ErrChannelUnavailable
}

func (o *OfflineProvider) GetCPUTemperature(ctx context.Context) (*domain.TemperatureSnapshot, error) {
	return nil, domain.ErrChannelUnavailable
}
