// Package tui implements the live dashboard: a bubbletea program that polls
// the resolved metrics provider, tracks rolling series, and renders the
// braille chart with severity-colored readouts.
package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/format"
	"sysdash/internal/fps"
	"sysdash/internal/history"
	"sysdash/internal/series"
	"sysdash/internal/severity"
	"sysdash/internal/tui/styles"
)

const (
	defaultPollInterval = 2 * time.Second
	minPollInterval     = 500 * time.Millisecond
	clockInterval       = time.Second
	frameInterval       = time.Second / 60
	requestTimeout      = 5 * time.Second
)

// The three repeating loops each carry their own message type so they stay
// fully independent.
type (
	pollTickMsg  time.Time
	clockTickMsg time.Time
	frameTickMsg time.Time
)

// pollResultMsg joins one poll cycle's request pair. Either both snapshots
// are set or err is.
type pollResultMsg struct {
	snapshot *domain.MetricSnapshot
	temp     *domain.TemperatureSnapshot
	err      error
}

type specsMsg struct {
	specs *domain.HardwareSpecs
	err   error
}

// DashModel is the dashboard's bubbletea model.
type DashModel struct {
	provider domain.MetricsProvider
	repo     history.Repository // nil disables history persistence
	theme    styles.Theme
	offline  bool

	pollInterval time.Duration
	fetching     bool

	width  int
	height int

	series  *series.Set
	monitor *fps.Monitor

	specs    *domain.HardwareSpecs
	snapshot *domain.MetricSnapshot
	tempC    *float64
	lastErr  error

	clock   string
	fpsText string
	fpsTier severity.Tier

	spin spinner.Model
}

// NewDashModel builds the dashboard around an already-resolved provider.
// offline suppresses every provider contact; the repo may be nil.
func NewDashModel(provider domain.MetricsProvider, repo history.Repository, cfg *config.Config, offline bool) DashModel {
	interval := defaultPollInterval
	if cfg != nil && cfg.PollIntervalMs > 0 {
		if custom := time.Duration(cfg.PollIntervalMs) * time.Millisecond; custom >= minPollInterval {
			interval = custom
		}
	}

	theme := styles.Dark
	if cfg != nil {
		theme = styles.ThemeByName(cfg.Theme)
	}

	return DashModel{
		provider:     provider,
		repo:         repo,
		theme:        theme,
		offline:      offline,
		pollInterval: interval,
		fetching:     !offline, // the first cycle fires at Init
		series:       series.NewSet(),
		monitor:      fps.NewMonitor(),
		clock:        format.Clock(time.Now()),
		spin:         spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (m DashModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) }),
		tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameTickMsg(t) }),
	}
	if !m.offline {
		cmds = append(cmds,
			m.spin.Tick,
			m.fetchSpecs(),
			m.fetchMetrics(),
			tea.Tick(m.pollInterval, func(t time.Time) tea.Msg { return pollTickMsg(t) }),
		)
	}
	return tea.Batch(cmds...)
}

func (m DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			if m.theme.Name == styles.Dark.Name {
				m.theme = styles.MidnightTheme
			} else {
				m.theme = styles.Dark
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pollTickMsg:
		next := tea.Tick(m.pollInterval, func(t time.Time) tea.Msg { return pollTickMsg(t) })
		if m.fetching {
			// previous cycle still joining; skip, never stack requests
			return m, next
		}
		m.fetching = true
		return m, tea.Batch(m.fetchMetrics(), next)

	case pollResultMsg:
		return m.applyPollResult(msg)

	case specsMsg:
		if msg.err != nil {
			log.Printf("hardware specs fetch failed: %v", msg.err)
			return m, nil
		}
		m.specs = msg.specs

	case clockTickMsg:
		m.clock = format.Clock(time.Time(msg))
		return m, tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })

	case frameTickMsg:
		if update, ok := m.monitor.Frame(); ok {
			m.fpsText = format.FPS(update.FPS)
			m.fpsTier = update.Tier
		}
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameTickMsg(t) })

	case spinner.TickMsg:
		if !m.connecting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyPollResult folds one completed poll cycle into the model. Any error
// reverts every readout to placeholders for this tick; the next regular tick
// retries on its own.
func (m DashModel) applyPollResult(msg pollResultMsg) (tea.Model, tea.Cmd) {
	m.fetching = false

	if msg.err != nil {
		log.Printf("poll cycle failed: %v", msg.err)
		m.lastErr = msg.err
		m.snapshot = nil
		m.tempC = nil
		return m, nil
	}

	m.lastErr = nil
	m.snapshot = msg.snapshot
	m.tempC = msg.temp.Celsius

	m.series.CPU.Push(msg.snapshot.CPUUsagePercent)
	m.series.Memory.Push(msg.snapshot.MemoryUsagePercent)
	if m.tempC != nil {
		m.series.Temperature.Push(*m.tempC)
	} else {
		// sentinel: keeps the three series index-aligned without counting
		// as a drawable reading
		m.series.Temperature.Push(0)
	}

	if m.repo != nil {
		return m, m.saveSample(msg.snapshot, m.tempC)
	}
	return m, nil
}

// connecting reports whether no poll cycle has completed yet.
func (m DashModel) connecting() bool {
	return !m.offline && m.snapshot == nil && m.lastErr == nil && m.series.CPU.Len() == 0
}

func (m DashModel) fetchMetrics() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			snapshot *domain.MetricSnapshot
			temp     *domain.TemperatureSnapshot
		)
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			s, err := provider.GetSystemInfo(ctx)
			if err != nil {
				return err
			}
			snapshot = s
			return nil
		})
		g.Go(func() error {
			t, err := provider.GetCPUTemperature(ctx)
			if err != nil {
				return err
			}
			temp = t
			return nil
		})
		if err := g.Wait(); err != nil {
			return pollResultMsg{err: err}
		}
		return pollResultMsg{snapshot: snapshot, temp: temp}
	}
}

func (m DashModel) fetchSpecs() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		specs, err := provider.GetHardwareSpecs(ctx)
		return specsMsg{specs: specs, err: err}
	}
}

func (m DashModel) saveSample(snapshot *domain.MetricSnapshot, tempC *float64) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		sample := &history.Sample{
			CPUPercent:    snapshot.CPUUsagePercent,
			MemoryPercent: snapshot.MemoryUsagePercent,
			TemperatureC:  tempC,
		}
		if err := repo.Save(sample); err != nil {
			log.Printf("history save failed: %v", err)
		}
		return nil
	}
}
