package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
)

const remoteRequestTimeout = 5 * time.Second

// RemoteProvider queries a metrics agent over HTTP. Requests carry the
// bearer token stored for the remote channel; agents without auth work
// with an empty token.
type RemoteProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRemoteProvider(baseURL, token string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: remoteRequestTimeout},
	}
}

// RegisterRemote registers the remote agent binding with the channel registry.
func RegisterRemote() {
	Register("remote", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		if cfg.AgentURL == "" {
			return nil, fmt.Errorf("remote channel requires agent-url in config: %w", domain.ErrChannelUnavailable)
		}

		token, err := store.GetToken("remote")
		if err != nil && !errors.Is(err, auth.ErrTokenNotFound) {
			return nil, fmt.Errorf("remote auth: %w", err)
		}

		return NewRemoteProvider(cfg.AgentURL, token), nil
	})
}

func (r *RemoteProvider) GetHardwareSpecs(ctx context.Context) (*domain.HardwareSpecs, error) {
	var specs domain.HardwareSpecs
	if err := r.get(ctx, "/api/v1/specs", &specs); err != nil {
		return nil, err
	}
	return &specs, nil
}

func (r *RemoteProvider) GetSystemInfo(ctx context.Context) (*domain.MetricSnapshot, error) {
	var snapshot domain.MetricSnapshot
	if err := r.get(ctx, "/api/v1/system", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *RemoteProvider) GetCPUTemperature(ctx context.Context) (*domain.TemperatureSnapshot, error) {
	var temp domain.TemperatureSnapshot
	if err := r.get(ctx, "/api/v1/temperature", &temp); err != nil {
		return nil, err
	}
	return &temp, nil
}

func (r *RemoteProvider) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("agent request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("agent %s: %v: %w", path, err, domain.ErrRequestFailed)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("agent %s returned %d: %w", path, resp.StatusCode, domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("agent %s returned %d: %w", path, resp.StatusCode, domain.ErrRequestFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("agent %s: decode response: %v: %w", path, err, domain.ErrRequestFailed)
	}
	return nil
}
