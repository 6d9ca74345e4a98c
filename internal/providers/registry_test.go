package providers

import (
	"context"
	"errors"
	"testing"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
)

type stubProvider struct {
	specs *domain.HardwareSpecs
	info  *domain.MetricSnapshot
	temp  *domain.TemperatureSnapshot
	err   error
}

func (s *stubProvider) GetHardwareSpecs(ctx context.Context) (*domain.HardwareSpecs, error) {
	return s.specs, s.err
}

func (s *stubProvider) GetSystemInfo(ctx context.Context) (*domain.MetricSnapshot, error) {
	return s.info, s.err
}

func (s *stubProvider) GetCPUTemperature(ctx context.Context) (*domain.TemperatureSnapshot, error) {
	return s.temp, s.err
}

func TestRegisterAndGet(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	want := &stubProvider{}
	Register("mock", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return want, nil
	})

	got, err := Get("mock", &config.Config{}, auth.NewMockStore())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != domain.MetricsProvider(want) {
		t.Error("Get returned a different provider than the factory produced")
	}
}

func TestGet_NormalizesName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("Mock", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return &stubProvider{}, nil
	})

	if _, err := Get("  mock ", &config.Config{}, auth.NewMockStore()); err != nil {
		t.Errorf("expected normalized lookup to succeed, got %v", err)
	}
}

func TestGet_UnknownChannel(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, err := Get("nope", &config.Config{}, auth.NewMockStore()); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestGet_FactoryErrorPropagates(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	wantErr := errors.New("boom")
	Register("broken", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return nil, wantErr
	})

	if _, err := Get("broken", &config.Config{}, auth.NewMockStore()); !errors.Is(err, wantErr) {
		t.Errorf("expected factory error, got %v", err)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	factory := func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return &stubProvider{}, nil
	}
	Register("dup", factory)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", factory)
}
