package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
)

func TestRemoteProvider_GetSystemInfo(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/system" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cpu_usage":42.5,"memory_usage":61.2,"used_memory":10737418240,"total_memory":17179869184,"uptime":86400}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "secret-token")
	got, err := p.GetSystemInfo(context.Background())
	if err != nil {
		t.Fatalf("GetSystemInfo failed: %v", err)
	}

	want := &domain.MetricSnapshot{
		CPUUsagePercent:    42.5,
		MemoryUsagePercent: 61.2,
		UsedMemoryBytes:    10737418240,
		TotalMemoryBytes:   17179869184,
		UptimeSeconds:      86400,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestRemoteProvider_NullTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"temperature":null}`))
	}))
	defer srv.Close()

	got, err := NewRemoteProvider(srv.URL, "").GetCPUTemperature(context.Background())
	if err != nil {
		t.Fatalf("GetCPUTemperature failed: %v", err)
	}
	if got.Celsius != nil {
		t.Errorf("expected nil reading, got %v", *got.Celsius)
	}
}

func TestRemoteProvider_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewRemoteProvider(srv.URL, "stale").GetSystemInfo(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRemoteProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRemoteProvider(srv.URL, "").GetHardwareSpecs(context.Background())
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Errorf("expected ErrRequestFailed, got %v", err)
	}
}

func TestRemoteProvider_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := NewRemoteProvider(srv.URL, "").GetSystemInfo(context.Background())
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Errorf("expected ErrRequestFailed, got %v", err)
	}
}

func TestRegisterRemote_RequiresAgentURL(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	RegisterRemote()

	_, err := Get("remote", &config.Config{}, auth.NewMockStore())
	if !errors.Is(err, domain.ErrChannelUnavailable) {
		t.Errorf("expected ErrChannelUnavailable without agent-url, got %v", err)
	}
}

func TestRegisterRemote_TokenlessAgentAllowed(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	RegisterRemote()

	cfg := &config.Config{AgentURL: "http://nas.lan:9815"}
	if _, err := Get("remote", cfg, auth.NewMockStore()); err != nil {
		t.Errorf("expected tokenless construction to succeed, got %v", err)
	}
}
