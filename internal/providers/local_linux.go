//go:build linux

package providers

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
)

// cpuSampleGap is how long the very first system-info call waits between
// its two /proc/stat reads so the initial reading is a real delta.
const cpuSampleGap = 200 * time.Millisecond

// LocalProvider reads metrics straight from procfs and sysfs on the host.
type LocalProvider struct {
	mu   sync.Mutex
	prev *cpuSample
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// RegisterLocal registers the local sensor binding with the channel registry.
func RegisterLocal() {
	Register("local", func(cfg *config.Config, store auth.Store) (domain.MetricsProvider, error) {
		return NewLocalProvider(), nil
	})
}

func (l *LocalProvider) GetSystemInfo(ctx context.Context) (*domain.MetricSnapshot, error) {
	usage, err := l.cpuUsage(ctx)
	if err != nil {
		return nil, err
	}

	mem, err := readMemInfo()
	if err != nil {
		return nil, err
	}

	uptime, err := readUptime()
	if err != nil {
		return nil, err
	}

	return &domain.MetricSnapshot{
		CPUUsagePercent:    usage,
		MemoryUsagePercent: mem.usedPercent(),
		UsedMemoryBytes:    mem.usedBytes(),
		TotalMemoryBytes:   mem.totalBytes,
		UptimeSeconds:      uptime,
	}, nil
}

// cpuUsage computes busy time since the previous call. The first call has
// no baseline, so it takes a second sample after a short gap.
func (l *LocalProvider) cpuUsage(ctx context.Context) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	curr, err := readCPUSample()
	if err != nil {
		return 0, err
	}

	baseline := l.prev
	if baseline == nil {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(cpuSampleGap):
		}

		first := curr
		curr, err = readCPUSample()
		if err != nil {
			return 0, err
		}
		baseline = &first
	}

	l.prev = &curr
	return cpuUsageBetween(*baseline, curr), nil
}

func (l *LocalProvider) GetHardwareSpecs(ctx context.Context) (*domain.HardwareSpecs, error) {
	mem, err := readMemInfo()
	if err != nil {
		return nil, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = ""
	}

	specs := &domain.HardwareSpecs{
		CPUModel:      readCPUModel(),
		CPUCores:      runtime.NumCPU(),
		CPUArch:       runtime.GOARCH,
		TotalMemoryGB: math.Round(float64(mem.totalBytes)/(1<<30)*100) / 100,
		Hostname:      hostname,
	}
	specs.OSName, specs.OSVersion = readOSRelease()

	return specs, nil
}

// GetCPUTemperature scans the thermal zones for a CPU package sensor.
// Hosts without a usable sensor report a nil reading, not an error.
func (l *LocalProvider) GetCPUTemperature(ctx context.Context) (*domain.TemperatureSnapshot, error) {
	return &domain.TemperatureSnapshot{Celsius: readThermalZones()}, nil
}

func readCPUSample() (cpuSample, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return cpuSample{}, fmt.Errorf("open /proc/stat: %w", err)
	}
	defer f.Close()
	return parseCPUStat(f)
}

func readMemInfo() (memInfo, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return memInfo{}, fmt.Errorf("open /proc/meminfo: %w", err)
	}
	defer f.Close()
	return parseMemInfo(f)
}

func readUptime() (uint64, error) {
	f, err := os.Open("/proc/uptime")
	if err != nil {
		return 0, fmt.Errorf("open /proc/uptime: %w", err)
	}
	defer f.Close()
	return parseUptime(f)
}

func readCPUModel() string {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	defer f.Close()
	return parseCPUModel(f)
}

func readOSRelease() (name, version string) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "", ""
	}
	defer f.Close()
	return parseOSRelease(f)
}

func readThermalZones() *float64 {
	zones, _ := filepath.Glob("/sys/class/thermal/thermal_zone*")

	var fallback *float64
	for _, zone := range zones {
		raw, err := os.ReadFile(filepath.Join(zone, "temp"))
		if err != nil {
			continue
		}
		milli, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			continue
		}
		celsius := float64(milli) / 1000

		typeRaw, _ := os.ReadFile(filepath.Join(zone, "type"))
		if isCPUZone(strings.TrimSpace(string(typeRaw))) {
			return &celsius
		}
		if fallback == nil {
			fallback = &celsius
		}
	}
	return fallback
}

func isCPUZone(zoneType string) bool {
	zoneType = strings.ToLower(zoneType)
	return strings.Contains(zoneType, "x86_pkg_temp") || strings.Contains(zoneType, "cpu")
}
