package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFrom_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	want := &Config{
		Channel:        "remote",
		AgentURL:       "http://nas.lan:9815",
		Theme:          "midnight",
		PollIntervalMs: 1000,
	}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error for invalid JSON")
	}
}

func TestLookup(t *testing.T) {
	if Lookup("channel") == nil {
		t.Error("expected lookup to find 'channel'")
	}
	if Lookup("  Theme ") == nil {
		t.Error("expected lookup to normalize case and whitespace")
	}
	if Lookup("bogus") != nil {
		t.Error("expected lookup miss for unknown key")
	}
}

func TestKeySpec_PollIntervalValidation(t *testing.T) {
	spec := Lookup("poll-interval-ms")
	if spec == nil {
		t.Fatal("poll-interval-ms key missing")
	}

	cfg := &Config{}
	spec.Set(cfg, "250") // below minimum, ignored
	if cfg.PollIntervalMs != 0 {
		t.Errorf("expected sub-minimum interval to be rejected, got %d", cfg.PollIntervalMs)
	}

	spec.Set(cfg, "1500")
	if cfg.PollIntervalMs != 1500 {
		t.Errorf("expected 1500, got %d", cfg.PollIntervalMs)
	}
	if got := spec.Get(cfg); got != "1500" {
		t.Errorf("Get = %q, want \"1500\"", got)
	}
}
