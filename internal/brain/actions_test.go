// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package brain

import (
	"testing"

	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractActions(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []models.Action
	}{
		{
			name:    "set cycle day",
			message: "set my cycle day to 9",
			want:    []models.Action{models.NewUpdateCycleAction(9)},
		},
		{
			name:    "i'm on day",
			message: "I'm on day 21",
			want:    []models.Action{models.NewUpdateCycleAction(21)},
		},
		{
			name:    "im on day without apostrophe",
			message: "im on day 3 today",
			want:    []models.Action{models.NewUpdateCycleAction(3)},
		},
		{
			name:    "update cycle day upper case",
			message: "UPDATE CYCLE DAY 12",
			want:    []models.Action{models.NewUpdateCycleAction(12)},
		},
		{
			name:    "create database",
			message: "create a crystal database",
			want:    []models.Action{models.NewCreateDatabaseAction("crystal")},
		},
		{
			name:    "database name keeps case",
			message: "Please Start a Herb database",
			want:    []models.Action{models.NewCreateDatabaseAction("Herb")},
		},
		{
			name:    "word starting with a is not an article",
			message: "make amethyst database",
			want:    []models.Action{models.NewCreateDatabaseAction("amethyst")},
		},
		{
			name:    "cycle action comes first",
			message: "please create a crystal database and set my cycle day to 3",
			want: []models.Action{
				models.NewUpdateCycleAction(3),
				models.NewCreateDatabaseAction("crystal"),
			},
		},
		{
			name:    "only first cycle match",
			message: "set cycle day to 4, no wait, set cycle day to 5",
			want:    []models.Action{models.NewUpdateCycleAction(4)},
		},
		{
			name:    "no command",
			message: "what a lovely day",
			want:    []models.Action{},
		},
		{
			name:    "empty",
			message: "",
			want:    []models.Action{},
		},
		{
			name:    "day overflows int",
			message: "set cycle day to 99999999999999999999999",
			want:    []models.Action{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractActions(tt.message))
		})
	}
}

// ── CyclePhaseForDay ─────────────────────────────────────────────────────────

func TestCyclePhaseForDay_Boundaries(t *testing.T) {
	tests := []struct {
		day  int
		want models.CyclePhase
	}{
		{-3, models.PhaseMenstrual},
		{1, models.PhaseMenstrual},
		{5, models.PhaseMenstrual},
		{6, models.PhaseFollicular},
		{13, models.PhaseFollicular},
		{14, models.PhaseOvulatory},
		{16, models.PhaseOvulatory},
		{17, models.PhaseLuteal},
		{40, models.PhaseLuteal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CyclePhaseForDay(tt.day), "day %d", tt.day)
	}
}
