package brain

import (
	"strings"

	"github.com/MKhiriev/cosmic-brain/models"
)

type categoryKeywords struct {
	category models.Category
	keywords []string
}

// categoryTable is evaluated top to bottom and the first hit wins, so the
// order of rows is part of the behaviour. Keywords overlap between rows
// ("house", "call") on purpose.
var categoryTable = []categoryKeywords{
	{models.CategoryGoals, []string{"goal", "want to", "should", "career", "transition", "house"}},
	{models.CategoryTasks, []string{"todo", "need to do", "remember", "call", "buy", "fix", "schedule"}},
	{models.CategoryGarden, []string{"plant", "garden", "harvest", "seeds", "water", "herbs", "vegetables"}},
	{models.CategorySpiritual, []string{"tarot", "meditation", "insight", "dream", "feeling", "intuition", "energy"}},
	{models.CategoryHealth, []string{"cycle", "pcos", "pmdd", "weight", "exercise", "vitamins", "mood"}},
	{models.CategoryHome, []string{"house", "room", "clean", "organize", "ceiling fan", "project"}},
	{models.CategoryFinance, []string{"money", "budget", "invest", "save", "spending", "bills"}},
	{models.CategoryRelationships, []string{"friend", "family", "birthday", "call", "text", "visit"}},
	{models.CategoryLearning, []string{"course", "book", "study", "learn", "research", "video"}},
	{models.CategoryRandom, []string{"idea", "thought", "random", "brain dump", "note"}},
}

// Categorize returns the first category, in priority order, that has a
// keyword occurring anywhere in text (case-insensitive, no word boundaries:
// "housework" matches "house"). Text without any hit is random.
func Categorize(text string) models.Category {
	lowered := strings.ToLower(text)
	for _, row := range categoryTable {
		for _, keyword := range row.keywords {
			if strings.Contains(lowered, keyword) {
				return row.category
			}
		}
	}

	return models.CategoryRandom
}
