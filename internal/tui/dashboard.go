package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/cosmic-brain/models"
)

const maxBarWidth = 24

type dashboardModel struct {
	timeframe models.Timeframe
	stats     models.DashboardStats
	loading   bool
	loaded    bool
	naming    bool
	nameInput textinput.Model
	status    string
}

func newDashboardModel() dashboardModel {
	in := textinput.New()
	in.Placeholder = "Collection name (e.g. Dream Journal)"
	in.CharLimit = 80
	in.Width = 40
	return dashboardModel{timeframe: models.TimeframeWeek, nameInput: in}
}

func (m dashboardModel) View(header models.HeaderSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Timeframe: %s\n\n", m.timeframe)
	switch {
	case m.loading && !m.loaded:
		b.WriteString("Loading...\n")
	case m.loaded:
		s := m.stats
		fmt.Fprintf(&b, "Total dumps:      %d\n", s.TotalDumps)
		fmt.Fprintf(&b, "Processed:        %d (%d%%)\n", s.ProcessedDumps, s.CompletionPercent)
		fmt.Fprintf(&b, "Unprocessed:      %d\n", s.UnprocessedDumps)
		fmt.Fprintf(&b, "Last 7 days:      %d\n", s.RecentActivity)
		b.WriteString("\n")
		b.WriteString(renderBreakdown(s.CategoryBreakdown))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Cycle: day %d, %s\n", header.Cycle.Day, header.Cycle.Phase)
	b.WriteString("Collections:\n")
	if len(header.Collections) == 0 {
		b.WriteString("  -\n")
	}
	for _, c := range header.Collections {
		fmt.Fprintf(&b, "  %s (%s, %d items)\n", c.Name, c.Type, c.ItemCount)
	}

	if m.naming {
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "1-4: today/week/month/all  +/-: cycle day  n: new collection  g: reload"
	if m.naming {
		hotKeys = "enter: create  esc: cancel"
	}
	return renderPage("DASHBOARD", b.String(), hotKeys)
}

func renderBreakdown(counts []models.CategoryCount) string {
	if len(counts) == 0 {
		return "No notes in this timeframe\n"
	}

	top := 0
	for _, c := range counts {
		top = max(top, c.Count)
	}

	var b strings.Builder
	for _, c := range counts {
		width := 0
		if top > 0 {
			width = c.Count * maxBarWidth / top
		}
		fmt.Fprintf(&b, "%-15s %s %d\n", c.Category, strings.Repeat("█", max(width, 1)), c.Count)
	}
	return b.String()
}
