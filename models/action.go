// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActionType tags the variant held by an [Action].
type ActionType string

const (
	// ActionUpdateCycle sets the tracked cycle day.
	ActionUpdateCycle ActionType = "update_cycle"
	// ActionCreateDatabase appends a new collection to the registry.
	ActionCreateDatabase ActionType = "create_database"
)

// Action is a typed instruction recognised in user text.
//
// Day is meaningful only for ActionUpdateCycle and Name only for
// ActionCreateDatabase. The JSON shape is {type, value} and {type, name}.
type Action struct {
	Type ActionType `json:"type"`
	Day  int        `json:"value,omitempty"`
	Name string     `json:"name,omitempty"`
}

// NewUpdateCycleAction returns an ActionUpdateCycle for day.
func NewUpdateCycleAction(day int) Action {
	return Action{Type: ActionUpdateCycle, Day: day}
}

// NewCreateDatabaseAction returns an ActionCreateDatabase for name.
func NewCreateDatabaseAction(name string) Action {
	return Action{Type: ActionCreateDatabase, Name: name}
}
