// Package fps measures the actual render-loop cadence. The monitor is driven
// by the display's per-frame callback and is entirely independent of the
// metrics poll cadence.
package fps

import (
	"math"
	"time"

	"sysdash/internal/severity"
)

// window is the minimum elapsed wall-clock time before a measurement is
// published.
const window = time.Second

// Update is one published frame-rate measurement.
type Update struct {
	FPS  int
	Tier severity.Tier
}

// Monitor counts frame callbacks and publishes a rounded frames-per-second
// figure once at least one second has elapsed, then restarts the window.
// It is not safe for concurrent use; the render loop is single-threaded.
type Monitor struct {
	frames      int
	windowStart time.Time
	now         func() time.Time
}

// NewMonitor returns a monitor whose measurement window starts now.
func NewMonitor() *Monitor {
	return NewMonitorWithClock(time.Now)
}

// NewMonitorWithClock returns a monitor using the supplied clock. Intended
// for testing.
func NewMonitorWithClock(now func() time.Time) *Monitor {
	return &Monitor{now: now, windowStart: now()}
}

// Frame records one frame callback. When the elapsed time since the window
// started reaches one second, it returns the measurement for that window and
// resets both the counter and the timer.
func (m *Monitor) Frame() (Update, bool) {
	m.frames++

	now := m.now()
	elapsed := now.Sub(m.windowStart)
	if elapsed < window {
		return Update{}, false
	}

	rate := int(math.Round(float64(m.frames) * 1000 / float64(elapsed.Milliseconds())))
	m.frames = 0
	m.windowStart = now

	return Update{FPS: rate, Tier: severity.ClassifyFPS(float64(rate))}, true
}
