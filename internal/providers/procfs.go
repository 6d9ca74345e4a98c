package providers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pure parsers for the procfs and os-release formats the local binding
// reads. They take io.Reader so tests can feed literal file contents
// without touching the host.

// cpuSample holds the aggregate "cpu" counters from /proc/stat.
type cpuSample struct {
	idle  uint64
	total uint64
}

// parseCPUStat extracts the aggregate cpu line. Idle and iowait jiffies
// count as idle time.
func parseCPUStat(r io.Reader) (cpuSample, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}

		var s cpuSample
		for i, field := range fields[1:] {
			v, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return cpuSample{}, fmt.Errorf("bad cpu counter %q: %w", field, err)
			}
			s.total += v
			if i == 3 || i == 4 {
				s.idle += v
			}
		}
		return s, nil
	}
	if err := sc.Err(); err != nil {
		return cpuSample{}, err
	}
	return cpuSample{}, errors.New("no aggregate cpu line found")
}

// cpuUsageBetween returns the busy-time percentage between two samples.
// A non-advancing counter reads as 0% rather than an error.
func cpuUsageBetween(prev, curr cpuSample) float64 {
	if curr.total <= prev.total {
		return 0
	}
	deltaTotal := curr.total - prev.total
	deltaIdle := curr.idle - prev.idle
	if deltaIdle > deltaTotal {
		return 0
	}
	return float64(deltaTotal-deltaIdle) / float64(deltaTotal) * 100
}

// memInfo holds the /proc/meminfo fields the dashboard needs, in bytes.
type memInfo struct {
	totalBytes     uint64
	availableBytes uint64
}

func (m memInfo) usedBytes() uint64 {
	if m.availableBytes > m.totalBytes {
		return 0
	}
	return m.totalBytes - m.availableBytes
}

func (m memInfo) usedPercent() float64 {
	if m.totalBytes == 0 {
		return 0
	}
	return float64(m.usedBytes()) / float64(m.totalBytes) * 100
}

func parseMemInfo(r io.Reader) (memInfo, error) {
	var info memInfo
	var haveTotal, haveAvailable bool

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}

		var target *uint64
		switch fields[0] {
		case "MemTotal:":
			target = &info.totalBytes
			haveTotal = true
		case "MemAvailable:":
			target = &info.availableBytes
			haveAvailable = true
		default:
			continue
		}

		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return memInfo{}, fmt.Errorf("bad meminfo value %q: %w", fields[1], err)
		}
		*target = kb * 1024

		if haveTotal && haveAvailable {
			return info, nil
		}
	}
	if err := sc.Err(); err != nil {
		return memInfo{}, err
	}
	return memInfo{}, errors.New("meminfo missing MemTotal or MemAvailable")
}

// parseUptime reads the first field of /proc/uptime as whole seconds.
func parseUptime(r io.Reader) (uint64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, errors.New("empty uptime")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad uptime %q: %w", fields[0], err)
	}
	return uint64(secs), nil
}

// parseCPUModel returns the first "model name" value from /proc/cpuinfo,
// or an empty string when none is present.
func parseCPUModel(r io.Reader) string {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// parseOSRelease extracts NAME and VERSION (falling back to VERSION_ID)
// from an os-release file.
func parseOSRelease(r io.Reader) (name, version string) {
	var versionID string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "NAME":
			name = value
		case "VERSION":
			version = value
		case "VERSION_ID":
			versionID = value
		}
	}
	if version == "" {
		version = versionID
	}
	return name, version
}
