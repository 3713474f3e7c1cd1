package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cosmic-brain/models"
)

type recentModel struct {
	items   []models.Note
	idx     int
	loading bool
	status  string
}

func newRecentModel() recentModel {
	return recentModel{loading: true}
}

func (m recentModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *recentModel) setItems(items []models.Note) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m recentModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No brain dumps yet\n")
	default:
		for i, note := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			done := "[ ]"
			if note.Processed {
				done = "[x]"
			}
			fmt.Fprintf(&b, "%s%s %s %s  %s\n",
				cursor, done, note.CreatedAt.Local().Format("Jan 02 15:04"),
				categoryBadge(note.Category), fitText(oneLine(note.Content), 48))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("RECENT", b.String(), "p: processed  c: chat  r: reflect  d: delete  g: reload")
}

// reflectionModel shows the processing result of a note.
type reflectionModel struct {
	note        models.Note
	text        string
	suggestions []string
}

func (m reflectionModel) View() string {
	var b strings.Builder

	b.WriteString(categoryBadge(m.note.Category))
	b.WriteString(" ")
	b.WriteString(fitText(oneLine(m.note.Content), 50))
	b.WriteString("\n\n")
	b.WriteString(m.text)
	if len(m.suggestions) > 0 {
		b.WriteString("\n\n")
		for _, s := range m.suggestions {
			b.WriteString("  - ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter / esc close"))

	return overlayBoxStyle.Width(64).Render(b.String())
}
