package models

import "time"

// CosmicSnapshot is recomputed on demand from the current date and is never
// stored as authoritative data.
type CosmicSnapshot struct {
	MoonPhase   string    `json:"moonPhase"`
	CurrentSign string    `json:"currentSign"`
	LastUpdated time.Time `json:"lastUpdated"`
}
