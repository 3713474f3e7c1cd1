package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/cosmic-brain/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("183"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	userStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	assistantStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// categoryColors follows the palette of the web dashboard.
var categoryColors = map[models.Category]lipgloss.Color{
	models.CategoryGoals:         "141",
	models.CategoryTasks:         "75",
	models.CategoryGarden:        "114",
	models.CategorySpiritual:     "218",
	models.CategoryHealth:        "203",
	models.CategoryHome:          "215",
	models.CategoryFinance:       "221",
	models.CategoryRelationships: "87",
	models.CategoryLearning:      "105",
	models.CategoryRandom:        "250",
}

func categoryBadge(c models.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = categoryColors[models.CategoryRandom]
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + c.String() + "]")
}
