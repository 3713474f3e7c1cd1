package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

const searchLimit = 50

// searchModel lists stored notes filtered by text and category.
type searchModel struct {
	input    textinput.Model
	category models.Category
	results  []models.Note
	idx      int
	loading  bool
	searched bool

	// pending is the query of the search in flight.
	pending adapter.NotesQuery
}

func newSearchModel() searchModel {
	in := textinput.New()
	in.Placeholder = "Search notes"
	in.CharLimit = 120
	in.Width = 40
	return searchModel{input: in}
}

func (m searchModel) query() adapter.NotesQuery {
	return adapter.NotesQuery{
		Category: m.category,
		Search:   strings.TrimSpace(m.input.Value()),
		Limit:    searchLimit,
	}
}

// nextCategory cycles all -> goals -> ... -> random -> all.
func (m *searchModel) nextCategory() {
	if m.category == "" {
		m.category = models.Categories[0]
		return
	}
	for i, c := range models.Categories {
		if c == m.category {
			if i+1 < len(models.Categories) {
				m.category = models.Categories[i+1]
			} else {
				m.category = ""
			}
			return
		}
	}
	m.category = ""
}

func (m *searchModel) setResults(notes []models.Note) {
	m.loading = false
	m.searched = true
	m.results = notes
	m.idx = 0
}

func (m searchModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.results) {
		return models.Note{}, false
	}
	return m.results[m.idx], true
}

func (m searchModel) View() string {
	var b strings.Builder

	category := "all"
	if m.category != "" {
		category = categoryBadge(m.category)
	}
	b.WriteString(m.input.View())
	fmt.Fprintf(&b, "\nCategory: %s\n\n", category)

	switch {
	case m.loading:
		b.WriteString("Searching...\n")
	case !m.searched:
	case len(m.results) == 0:
		b.WriteString("No matching notes\n")
	default:
		for i, note := range m.results {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s %s  %s\n",
				cursor, note.CreatedAt.Local().Format("Jan 02"),
				categoryBadge(note.Category), fitText(oneLine(note.Content), 52))
		}
	}

	return renderPage("SEARCH", b.String(), "enter: search  ctrl+f: category  up/down: select  ctrl+o: chat")
}
