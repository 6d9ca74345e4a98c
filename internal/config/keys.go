package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "channel").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "channel",
		Description: "Metrics channel probed first at startup (local or remote)",
		Get:         func(cfg *Config) string { return cfg.Channel },
		Set:         func(cfg *Config, v string) { cfg.Channel = v },
	},
	{
		Name:        "agent-url",
		Description: "Base URL of a remote metrics agent (remote channel)",
		Get:         func(cfg *Config) string { return cfg.AgentURL },
		Set:         func(cfg *Config, v string) { cfg.AgentURL = v },
	},
	{
		Name:        "theme",
		Description: "Dashboard color theme (dark or midnight)",
		Get:         func(cfg *Config) string { return cfg.Theme },
		Set:         func(cfg *Config, v string) { cfg.Theme = v },
	},
	{
		Name:        "poll-interval-ms",
		Description: "Poll interval in milliseconds (minimum 500)",
		Get: func(cfg *Config) string {
			if cfg.PollIntervalMs == 0 {
				return ""
			}
			return strconv.Itoa(cfg.PollIntervalMs)
		},
		Set: func(cfg *Config, v string) {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 500 {
				return
			}
			cfg.PollIntervalMs = n
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
