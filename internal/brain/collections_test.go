package brain

import (
	"testing"
	"time"

	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionDisplayName(t *testing.T) {
	assert.Equal(t, "Crystal", CollectionDisplayName("crystal"))
	assert.Equal(t, "Crystal", CollectionDisplayName("CRYSTAL"))
	assert.Equal(t, "Herb", CollectionDisplayName("hERB"))
	assert.Equal(t, "", CollectionDisplayName(""))
	assert.Equal(t, "Écrits", CollectionDisplayName("écrits"))
}

func TestCollectionType(t *testing.T) {
	assert.Equal(t, "crystal", CollectionType("CrYsTaL"))
}

func TestCollectionFieldsFor(t *testing.T) {
	crystal := CollectionFieldsFor("crystal")
	require.Len(t, crystal, 7)
	assert.Equal(t, "name", crystal[0].Name)
	assert.True(t, crystal[0].Required)

	assert.Equal(t, CollectionFieldsFor(CustomTemplate), CollectionFieldsFor("unknown"))
	assert.Equal(t, CollectionFieldsFor("goals"), CollectionFieldsFor(" Goals "))
}

func TestCollectionFieldsFor_ReturnsCopy(t *testing.T) {
	first := CollectionFieldsFor("crystal")
	first[0].Name = "changed"
	first[4].Options[0] = "changed"

	second := CollectionFieldsFor("crystal")
	assert.Equal(t, "name", second[0].Name)
	assert.Equal(t, "Root", second[4].Options[0])
}

// ── cosmic ───────────────────────────────────────────────────────────────────

func TestMoonPhaseForDate(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "New Moon"},
		{4, "Waxing Crescent"},
		{8, "First Quarter"},
		{16, "Full Moon"},
		{28, "Waning Crescent"},
		{31, "Waning Crescent"},
	}
	for _, tt := range tests {
		date := time.Date(2026, time.January, tt.day, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, MoonPhaseForDate(date), "day %d", tt.day)
	}
}

func TestZodiacSign(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 1, "Capricorn"},
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 19, "Pisces"},
		{time.March, 20, "Pisces"},
		{time.March, 21, "Aries"},
		{time.April, 20, "Taurus"},
		{time.May, 21, "Gemini"},
		{time.June, 21, "Cancer"},
		{time.July, 22, "Cancer"},
		{time.July, 23, "Leo"},
		{time.August, 23, "Virgo"},
		{time.September, 23, "Libra"},
		{time.October, 22, "Libra"},
		{time.October, 23, "Scorpio"},
		{time.November, 22, "Sagittarius"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
		{time.December, 31, "Capricorn"},
	}
	for _, tt := range tests {
		date := time.Date(2026, tt.month, tt.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, ZodiacSign(date), "%s %d", tt.month, tt.day)
	}
}

func TestCosmicSnapshotAt(t *testing.T) {
	now := time.Date(2026, time.August, 1, 9, 30, 0, 0, time.UTC)

	got := CosmicSnapshotAt(now)

	assert.Equal(t, models.CosmicSnapshot{
		MoonPhase:   "New Moon",
		CurrentSign: "Leo",
		LastUpdated: now,
	}, got)
}

// ── replies ──────────────────────────────────────────────────────────────────

func TestSuggestionsAndFallbacks(t *testing.T) {
	assert.Equal(t, []string{"Add to weekly time blocks", "Set gentle reminder", "Break into smaller steps"}, Suggestions(models.CategoryTasks))
	assert.Equal(t, defaultSuggestions, Suggestions(models.CategoryFinance))

	assert.Equal(t, fallbackReplies[models.CategoryRandom], FallbackReply(models.CategoryLearning))
	assert.Equal(t, fallbackReplies[models.CategoryHome], FallbackReply(models.CategoryHome))
}

func TestGreeting_MentionsNote(t *testing.T) {
	got := Greeting(models.Note{Content: "buy seeds", Category: models.CategoryTasks})
	assert.Contains(t, got, "tasks")
	assert.Contains(t, got, `"buy seeds"`)
}
