package history

import "time"

// Sample is one persisted poll cycle. TemperatureC is nil when the host
// reported no usable sensor for that cycle.
type Sample struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	CPUPercent    float64   `json:"cpu_pct"`
	MemoryPercent float64   `json:"mem_pct"`
	TemperatureC  *float64  `json:"temp_c,omitempty"`
}
