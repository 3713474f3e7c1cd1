package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cosmic-brain/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("tab: next screen  ctrl+c: quit"))

	return b.String()
}

// renderHeader is the one-line summary of the session shown above every
// screen. It is empty until the first refresh arrived.
func renderHeader(h models.HeaderSnapshot) string {
	if h.FetchedAt.IsZero() {
		return headerStyle.Render("connecting...")
	}

	parts := []string{
		"Moon: " + valueOrDash(h.Cosmic.MoonPhase),
		"Sign: " + valueOrDash(h.Cosmic.CurrentSign),
		fmt.Sprintf("Cycle: day %d, %s", h.Cycle.Day, h.Cycle.Phase),
		fmt.Sprintf("Collections: %d", len(h.Collections)),
	}
	return headerStyle.Render(strings.Join(parts, "  ·  "))
}

func renderTabs(current screen) string {
	tabs := make([]string, 0, len(screenOrder))
	for _, s := range screenOrder {
		if s == current {
			tabs = append(tabs, activeTabStyle.Render(s.String()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(s.String()))
	}
	return strings.Join(tabs, " ")
}

// describeAction renders an applied action the way the chat shows it.
func describeAction(a models.Action) string {
	switch a.Type {
	case models.ActionUpdateCycle:
		return fmt.Sprintf("cycle day set to %d", a.Day)
	case models.ActionCreateDatabase:
		return fmt.Sprintf("created collection %q", a.Name)
	default:
		return string(a.Type)
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// oneLine collapses whitespace so that multi-line notes fit a list row.
func oneLine(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
