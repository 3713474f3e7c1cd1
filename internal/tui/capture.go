package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/MKhiriev/cosmic-brain/models"
)

// quickStarters prefill the capture field, cycled with ctrl+t.
var quickStarters = []string{
	"I need to remember to...",
	"Random thought: ",
	"Goal idea: ",
	"House project: ",
	"Spiritual insight: ",
	"Something bothering me: ",
	"Excited about: ",
	"Need to research: ",
}

type captureModel struct {
	input   textarea.Model
	starter int
	saving  bool
	status  string
	last    *models.CaptureResponse
}

func newCaptureModel() captureModel {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind? Dump it all here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(70)
	ta.SetHeight(6)
	ta.Focus()
	return captureModel{input: ta}
}

// nextStarter replaces the field content with the next quick starter.
func (m *captureModel) nextStarter() {
	m.input.SetValue(quickStarters[m.starter])
	m.starter = (m.starter + 1) % len(quickStarters)
}

func (m captureModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString("Saving...\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.last != nil {
		b.WriteString("\nLast capture ")
		b.WriteString(categoryBadge(m.last.Note.Category))
		b.WriteString("\n")
		b.WriteString(fitText(oneLine(m.last.Note.Content), 70))
		b.WriteString("\n")
		for _, a := range m.last.Actions {
			b.WriteString("  + ")
			b.WriteString(describeAction(a))
			b.WriteString("\n")
		}
	}

	return renderPage("BRAIN DUMP", b.String(), "ctrl+s: save  ctrl+o: save and chat  ctrl+t: quick starter")
}
