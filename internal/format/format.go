// Package format renders readout values for display. All helpers are pure;
// the Placeholder constant is what every readout shows in offline or failed
// states.
package format

import (
	"fmt"
	"math"
	"time"
)

// Placeholder is shown when no real value is available.
const Placeholder = "--"

const (
	mib = 1024 * 1024
	gib = 1024 * mib
)

// Bytes renders a byte count in binary units: at or above 1 GiB as GB with
// one decimal, otherwise as MB rounded to a whole number.
func Bytes(n uint64) string {
	if n >= gib {
		return fmt.Sprintf("%.1f GB", float64(n)/float64(gib))
	}
	return fmt.Sprintf("%.0f MB", math.Round(float64(n)/float64(mib)))
}

// Percent renders a 0–100 value with one decimal and a percent sign.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Celsius renders a temperature with one decimal.
func Celsius(v float64) string {
	return fmt.Sprintf("%.1f°C", v)
}

// UptimeHours renders an uptime in hours with one decimal.
func UptimeHours(seconds uint64) string {
	return fmt.Sprintf("%.1f h", float64(seconds)/3600)
}

// Clock renders a 24-hour HH:MM:SS clock string.
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

// FPS renders a frame rate as a whole number.
func FPS(v int) string {
	return fmt.Sprintf("%d fps", v)
}
