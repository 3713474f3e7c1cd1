package brain

import (
	"testing"

	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/stretchr/testify/assert"
)

// ── Categorize ───────────────────────────────────────────────────────────────

func TestCategorize_DefaultsToRandom(t *testing.T) {
	assert.Equal(t, models.CategoryRandom, Categorize(""))
	assert.Equal(t, models.CategoryRandom, Categorize("xyzzy"))
	assert.Equal(t, models.CategoryRandom, Categorize("   "))
}

// TestCategorize_SingleCategoryKeyword checks a keyword that belongs only to
// one row and to no earlier row.
func TestCategorize_SingleCategoryKeyword(t *testing.T) {
	tests := []struct {
		text string
		want models.Category
	}{
		{"my GOAL for this year", models.CategoryGoals},
		{"add milk to the todo list", models.CategoryTasks},
		{"Harvest the tomatoes", models.CategoryGarden},
		{"pulled a tarot card today", models.CategorySpiritual},
		{"started taking vitamins", models.CategoryHealth},
		{"the ceiling fan wobbles", models.CategoryHome},
		{"new budget spreadsheet", models.CategoryFinance},
		{"sister's birthday is soon", models.CategoryRelationships},
		{"finished the online course", models.CategoryLearning},
		{"just a random idea", models.CategoryRandom},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.text))
		})
	}
}

// TestCategorize_PriorityOrder checks that an earlier row wins whatever the
// keyword position in the text.
func TestCategorize_PriorityOrder(t *testing.T) {
	assert.Equal(t, models.CategoryGoals, Categorize("buy stuff for my career"))
	assert.Equal(t, models.CategoryGoals, Categorize("career stuff, also buy milk"))
	assert.Equal(t, models.CategoryTasks, Categorize("call mom about the garden"))
	assert.Equal(t, models.CategoryGoals, Categorize("clean the house"))
}

func TestCategorize_NaiveSubstring(t *testing.T) {
	assert.Equal(t, models.CategoryGoals, Categorize("housework all weekend"))
}

func TestCategorize_CaptureExamples(t *testing.T) {
	assert.Equal(t, models.CategoryTasks, Categorize("I need to remember to call my dentist"))
	assert.Equal(t, models.CategoryGoals, Categorize("Feeling inspired about my career transition"))
}

func TestCategoryTable_CoversEveryCategoryInOrder(t *testing.T) {
	got := make([]models.Category, 0, len(categoryTable))
	for _, row := range categoryTable {
		got = append(got, row.category)
	}
	assert.Equal(t, models.Categories, got)
}
