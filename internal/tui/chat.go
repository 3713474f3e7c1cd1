package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/cosmic-brain/models"
)

const (
	defaultChatWidth  = 76
	defaultChatHeight = 14
)

type chatModel struct {
	key      string
	noteID   *int64
	title    string
	messages []models.ChatMessage
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	waiting  bool
	status   string
}

func newChatModel() chatModel {
	in := textinput.New()
	in.Placeholder = "Ask anything, or say \"I'm on day 12\"..."
	in.CharLimit = 2000
	in.Width = defaultChatWidth - 4

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := chatModel{
		key:      models.GeneralChatKey,
		title:    "General",
		viewport: viewport.New(defaultChatWidth, defaultChatHeight),
		input:    in,
		spinner:  s,
	}
	m.render()
	return m
}

// open switches the screen to another chat session. The messages are loaded
// separately.
func (m *chatModel) open(key string, noteID *int64, title string) {
	m.key = key
	m.noteID = noteID
	m.title = title
	m.waiting = false
	m.status = ""
	m.setMessages(nil)
}

func (m *chatModel) setMessages(messages []models.ChatMessage) {
	m.messages = messages
	m.render()
}

func (m *chatModel) appendMessage(msg models.ChatMessage) {
	m.messages = append(m.messages, msg)
	m.render()
}

func (m *chatModel) resize(width, height int) {
	if width > 8 {
		m.viewport.Width = width - 4
		m.input.Width = width - 8
	}
	if height > 16 {
		m.viewport.Height = height - 16
	}
	m.render()
}

// lastReply returns the newest assistant message.
func (m chatModel) lastReply() (string, bool) {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Role == models.RoleAssistant {
			return m.messages[i].Content, true
		}
	}
	return "", false
}

func (m *chatModel) render() {
	if len(m.messages) == 0 {
		m.viewport.SetContent(helpStyle.Render("No messages yet. Say hi!"))
		return
	}

	wrap := lipgloss.NewStyle().Width(m.viewport.Width)
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		author := userStyle.Render("You")
		if msg.Role == models.RoleAssistant {
			author = assistantStyle.Render("Brain")
		}
		b.WriteString(author)
		if !msg.Timestamp.IsZero() {
			b.WriteString(helpStyle.Render("  " + msg.Timestamp.Local().Format("15:04")))
		}
		b.WriteString("\n")
		b.WriteString(wrap.Render(msg.Content))
		b.WriteString("\n")
		for _, a := range msg.Actions {
			b.WriteString(statusStyle.Render("  + " + describeAction(a)))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(" thinking...\n")
	}
	b.WriteString(m.input.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("CHAT · "+m.title, b.String(), "enter: send  ctrl+y: copy reply  ctrl+x: clear chat  ctrl+r: reload")
}
