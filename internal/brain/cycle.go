package brain

import "github.com/MKhiriev/cosmic-brain/models"

// DefaultCycleDay is reported until the user declares a day.
const DefaultCycleDay = 14

// CyclePhaseForDay buckets a cycle day. The checks are cumulative and must
// stay in this order: 1-5 menstrual, 6-13 follicular, 14-16 ovulatory,
// 17 and above luteal. Days below 1 fall into the menstrual bucket.
func CyclePhaseForDay(day int) models.CyclePhase {
	switch {
	case day <= 5:
		return models.PhaseMenstrual
	case day <= 13:
		return models.PhaseFollicular
	case day <= 16:
		return models.PhaseOvulatory
	default:
		return models.PhaseLuteal
	}
}
