package domain

// MetricSnapshot captures the dynamic system metrics at a single instant.
// One snapshot is produced per poll tick and fully supersedes the previous
// one; consumers never mutate it.
type MetricSnapshot struct {
	CPUUsagePercent    float64 `json:"cpu_usage"`
	MemoryUsagePercent float64 `json:"memory_usage"`
	UsedMemoryBytes    uint64  `json:"used_memory"`
	TotalMemoryBytes   uint64  `json:"total_memory"`
	UptimeSeconds      uint64  `json:"uptime"`
}

// TemperatureSnapshot carries a CPU temperature reading. Celsius is nil when
// the platform exposes no usable sensor; nil and 0°C are distinct states and
// must stay distinguishable downstream.
type TemperatureSnapshot struct {
	Celsius *float64 `json:"temperature"`
}

// HardwareSpecs describes the static hardware and OS identity of the host.
// Fetched once at startup and treated as immutable for the session.
type HardwareSpecs struct {
	CPUModel      string  `json:"cpu_model"`
	CPUCores      int     `json:"cpu_cores"`
	CPUArch       string  `json:"cpu_arch"`
	TotalMemoryGB float64 `json:"total_memory_gb"`
	OSName        string  `json:"os_name"`
	OSVersion     string  `json:"os_version"`
	Hostname      string  `json:"hostname"`
}
