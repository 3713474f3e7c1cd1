package models

import "time"

// HeaderSnapshot is the data shown in the header of the terminal client.
type HeaderSnapshot struct {
	Cosmic      CosmicSnapshot
	Cycle       CycleState
	Collections []Collection
	FetchedAt   time.Time
}
