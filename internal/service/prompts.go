package service

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/cosmic-brain/models"
)

const contextSection = `COSMIC CONTEXT: {{with .Context.Cosmic}}Moon: {{.MoonPhase}}, Sign: {{.CurrentSign}}{{else}}Unknown{{end}}
CYCLE CONTEXT: {{with .Context.Cycle}}Day {{.Day}}, {{.Phase}} phase{{else}}Unknown{{end}}
{{- if .Context.RecentNotes}}
RECENT NOTES:
{{- range .Context.RecentNotes}}
- [{{.Category}}] {{.Content}}
{{- end}}
{{- end}}`

var chatPromptTemplate = template.Must(template.New("chat").Parse(`You are the personal assistant of a holistic "second brain" life system. You keep context across conversations.

CURRENT SESSION: {{.ChatType}} chat
{{- with .Note}}
ORIGINAL NOTE: "{{.Content}}"
CATEGORY: {{.Category}}
{{- end}}
` + contextSection + `

CONVERSATION HISTORY:
{{range .History}}{{.Role}}: {{.Content}}
{{end}}
CURRENT MESSAGE: "{{.Message}}"

You can:
1. Update the cycle day when asked ("set cycle day to X" or "I'm on day X")
2. Create new databases ("create crystal database", "start herb database")
3. Provide cosmic timing guidance
4. Help with gentle, low-friction organization

Respond naturally and take actions when requested. If creating a database or updating data, mention what you're doing.`))

var processPromptTemplate = template.Must(template.New("process").Parse(`You are the personal assistant of a holistic "second brain" life system.

NOTE CATEGORY: {{.Category}}
NOTE CONTENT: "{{.Content}}"
` + contextSection + `

Provide a helpful, warm and actionable response that:
1. Acknowledges the thought with empathy
2. Offers 1-2 specific, low-friction suggestions
3. Connects to bigger goals when relevant
4. Stays encouraging and not overwhelming

Respond as a wise, supportive friend.`))

type chatPromptData struct {
	ChatType string
	Note     *models.Note
	Context  models.UserContext
	History  []models.ChatMessage
	Message  string
}

type processPromptData struct {
	Category models.Category
	Content  string
	Context  models.UserContext
}

func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingPrompt, err)
	}
	return sb.String(), nil
}
