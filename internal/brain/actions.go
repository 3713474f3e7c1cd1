package brain

import (
	"regexp"
	"strconv"

	"github.com/MKhiriev/cosmic-brain/models"
)

var (
	setCycleDayRe    = regexp.MustCompile(`(?i)(?:set|update|change)?\s*cycle\s*day\s*(?:to\s*)?(\d+)`)
	onCycleDayRe     = regexp.MustCompile(`(?i)(?:i'm|i’m|im|i am)\s*on\s*day\s*(\d+)`)
	createDatabaseRe = regexp.MustCompile(`(?i)(?:create|start|make)\s*(?:an?\s+)?(\w+)\s*database`)
)

// ExtractActions scans message for command phrases and returns the actions
// they describe. At most one action of each kind is produced: the cycle
// update always precedes the database creation, whatever their order in the
// text. A message without commands yields an empty slice.
func ExtractActions(message string) []models.Action {
	actions := make([]models.Action, 0, 2)

	if day, ok := cycleDay(message); ok {
		actions = append(actions, models.NewUpdateCycleAction(day))
	}

	if m := createDatabaseRe.FindStringSubmatch(message); m != nil {
		actions = append(actions, models.NewCreateDatabaseAction(m[1]))
	}

	return actions
}

func cycleDay(message string) (int, bool) {
	m := setCycleDayRe.FindStringSubmatch(message)
	if m == nil {
		m = onCycleDayRe.FindStringSubmatch(message)
	}
	if m == nil {
		return 0, false
	}

	// digits that overflow int are not a usable day
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return day, true
}
