package domain

import "context"

// MetricsProvider is the request channel to a host-monitoring backend.
//
// GetHardwareSpecs is called once at startup; GetSystemInfo and
// GetCPUTemperature are called on every poll tick, concurrently with each
// other. All three may fail with an opaque request error; callers treat any
// failure uniformly and never inspect provider-specific error kinds.
type MetricsProvider interface {
	GetHardwareSpecs(ctx context.Context) (*HardwareSpecs, error)
	GetSystemInfo(ctx context.Context) (*MetricSnapshot, error)
	GetCPUTemperature(ctx context.Context) (*TemperatureSnapshot, error)
}
