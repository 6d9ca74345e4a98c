package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/format"
	"sysdash/internal/severity"
	"sysdash/internal/tui/components"
	"sysdash/internal/tui/styles"
)

func (m DashModel) View() string {
	if m.width == 0 || m.height == 0 {
		return styles.MutedText.Render("starting...")
	}

	header := components.Header(m.width, m.hostLine(), m.clock, m.fpsReadout(), m.theme.TierColor(m.fpsTier))
	cards := m.cardRow()
	footer := components.Footer(m.width, m.statusLine())

	chartHeight := m.height - lipgloss.Height(header) - lipgloss.Height(cards) - lipgloss.Height(footer)
	if chartHeight < 3 {
		chartHeight = 3
	}
	chart := components.Chart{Width: m.width, Height: chartHeight, Theme: m.theme}
	body := chart.Render(m.chartSeries(), m.chartReadouts())

	return lipgloss.JoinVertical(lipgloss.Left, header, cards, body, footer)
}

func (m DashModel) hostLine() string {
	if m.specs == nil {
		return ""
	}
	host := m.specs.Hostname
	if m.specs.OSName != "" {
		host += " / " + m.specs.OSName + " " + m.specs.OSVersion
	}
	return host
}

func (m DashModel) fpsReadout() string {
	if m.fpsText == "" {
		return format.Placeholder
	}
	return m.fpsText
}

func (m DashModel) statusLine() string {
	switch {
	case m.offline:
		return "offline"
	case m.lastErr != nil:
		return "request failed"
	case m.connecting():
		return m.spin.View() + " connecting"
	default:
		return fmt.Sprintf("poll %s", m.pollInterval)
	}
}

func (m DashModel) cardRow() string {
	muted := styles.Muted

	cpuValue, cpuColor := format.Placeholder, muted
	memValue, memColor := format.Placeholder, muted
	memDetail := ""
	uptimeValue := format.Placeholder
	if m.snapshot != nil {
		cpuValue = format.Percent(m.snapshot.CPUUsagePercent)
		cpuColor = m.theme.TierColor(severity.ClassifyCPU(m.snapshot.CPUUsagePercent))
		memValue = format.Percent(m.snapshot.MemoryUsagePercent)
		memColor = m.theme.TierColor(severity.ClassifyMemory(m.snapshot.MemoryUsagePercent))
		memDetail = format.Bytes(m.snapshot.UsedMemoryBytes) + " / " + format.Bytes(m.snapshot.TotalMemoryBytes)
		uptimeValue = format.UptimeHours(m.snapshot.UptimeSeconds)
	}

	tempValue, tempColor := format.Placeholder, muted
	if m.tempC != nil {
		tempValue = format.Celsius(*m.tempC)
		tempColor = m.theme.TierColor(severity.ClassifyTemperature(*m.tempC))
	}

	return components.CardRow(
		components.Card("CPU", cpuValue, "", cpuColor),
		components.Card("Memory", memValue, memDetail, memColor),
		components.Card("Temp", tempValue, "", tempColor),
		components.Card("Uptime", uptimeValue, "", m.theme.Text),
	)
}

// chartSeries builds the polyline list. The temperature line only appears
// while some retained sample is strictly positive; sentinel zeros from
// sensorless ticks never count.
func (m DashModel) chartSeries() []components.Series {
	list := []components.Series{
		{Name: "cpu", Color: m.theme.SeriesCPU, Values: m.series.CPU.Values()},
		{Name: "mem", Color: m.theme.SeriesMemory, Values: m.series.Memory.Values()},
	}
	if m.series.Temperature.AnyPositive() {
		list = append(list, components.Series{
			Name:   "temp",
			Color:  m.theme.SeriesTemperature,
			Values: m.series.Temperature.Values(),
		})
	}
	return list
}

// chartReadouts mirrors chartSeries: one current-value row per drawn line.
func (m DashModel) chartReadouts() []components.Readout {
	muted := styles.Muted
	var rows []components.Readout

	if m.series.CPU.Len() > 0 {
		value, color := format.Placeholder, muted
		if m.snapshot != nil {
			value = format.Percent(m.snapshot.CPUUsagePercent)
			color = m.theme.TierColor(severity.ClassifyCPU(m.snapshot.CPUUsagePercent))
		}
		rows = append(rows, components.Readout{Label: "cpu", Value: value, Color: color})
	}
	if m.series.Memory.Len() > 0 {
		value, color := format.Placeholder, muted
		if m.snapshot != nil {
			value = format.Percent(m.snapshot.MemoryUsagePercent)
			color = m.theme.TierColor(severity.ClassifyMemory(m.snapshot.MemoryUsagePercent))
		}
		rows = append(rows, components.Readout{Label: "mem", Value: value, Color: color})
	}
	if m.series.Temperature.AnyPositive() {
		value, color := format.Placeholder, muted
		if m.tempC != nil {
			value = format.Celsius(*m.tempC)
			color = m.theme.TierColor(severity.ClassifyTemperature(*m.tempC))
		}
		rows = append(rows, components.Readout{Label: "temp", Value: value, Color: color})
	}
	return rows
}
