package models

import "time"

// CyclePhase is the bucket derived from a cycle day.
type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulatory  CyclePhase = "ovulatory"
	PhaseLuteal     CyclePhase = "luteal"
)

// Valid reports whether p is a known phase.
func (p CyclePhase) Valid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal:
		return true
	}
	return false
}

// CycleState is the user-declared cycle day and its phase.
// Day is deliberately unbounded.
type CycleState struct {
	Day       int        `json:"day"`
	Phase     CyclePhase `json:"phase"`
	UpdatedAt time.Time  `json:"lastUpdated"`
}

// CycleUpdateRequest is the body of POST /api/cycle. When CyclePhase is
// empty the phase is recomputed from CycleDay.
type CycleUpdateRequest struct {
	CycleDay   int        `json:"cycleDay"`
	CyclePhase CyclePhase `json:"cyclePhase,omitempty"`
}
