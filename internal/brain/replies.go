package brain

import (
	"fmt"

	"github.com/MKhiriev/cosmic-brain/models"
)

// ChatFallbackReply is appended to a chat session when the completion
// provider fails.
const ChatFallbackReply = "I'm having some technical difficulties, but I'm here with you. Let me try to help anyway!"

// ProcessDumpErrorMessage accompanies the fallback text of a failed
// process-dump call.
const ProcessDumpErrorMessage = "Error processing dump"

var suggestions = map[models.Category][]string{
	models.CategoryTasks:     {"Add to weekly time blocks", "Set gentle reminder", "Break into smaller steps"},
	models.CategoryGoals:     {"Add to goal roadmap", "Schedule planning session", "Connect to daily actions"},
	models.CategorySpiritual: {"Save to spiritual insights", "Journal deeper", "Check astrological timing"},
	models.CategoryGarden:    {"Add to garden database", "Check moon phase timing", "Plan seasonal actions"},
	models.CategoryHealth:    {"Track in cycle calendar", "Add to health goals", "Research cycle syncing"},
}

var defaultSuggestions = []string{"Save for later review", "Connect to other thoughts", "Explore further"}

var fallbackReplies = map[models.Category]string{
	models.CategoryGoals:     "I can see this connects to your bigger vision! Trust your experimental process. Let's break this into small steps that honor your energy.",
	models.CategoryTasks:     "Perfect capture! Your brain just freed up space by getting this out. Want me to help prioritize this based on your energy and current goals?",
	models.CategorySpiritual: "What a beautiful insight! This feels like important inner wisdom. How can we integrate this into your spiritual practice?",
	models.CategoryGarden:    "Love this garden connection! Let's tie this to the seasonal cycles and your moon phase planning.",
	models.CategoryHealth:    "Your body wisdom is speaking! Let's connect this to your cycle awareness and see how it fits with your support strategies.",
	models.CategoryHome:      "Another house project insight! I see the pattern here. Let's make this feel manageable.",
	models.CategoryRandom:    "I love these random thoughts, they're often the most important ones! Your mind is making connections. Let's see where this leads.",
}

// Suggestions returns follow-up suggestions for a processed note.
func Suggestions(category models.Category) []string {
	s, ok := suggestions[category]
	if !ok {
		s = defaultSuggestions
	}
	return append([]string(nil), s...)
}

// FallbackReply returns the canned reply used when processing a note of the
// given category fails.
func FallbackReply(category models.Category) string {
	if reply, ok := fallbackReplies[category]; ok {
		return reply
	}
	return fallbackReplies[models.CategoryRandom]
}

// Greeting is the first assistant message of a chat opened for note.
func Greeting(note models.Note) string {
	return fmt.Sprintf("I saved your %s thought: %q. Want to explore it together?", note.Category, note.Content)
}

// DatabaseCreatedMessage confirms a new collection.
func DatabaseCreatedMessage(name string) string {
	return fmt.Sprintf("%s database created successfully!", name)
}
