package brain

import (
	"time"

	"github.com/MKhiriev/cosmic-brain/models"
)

var moonPhases = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Third Quarter",
	"Waning Crescent",
}

// zodiacStarts holds the first day of every tropical sign, in calendar order.
var zodiacStarts = []struct {
	month time.Month
	day   int
	sign  string
}{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 21, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 22, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

// MoonPhaseForDate approximates the moon phase from the day of the month.
// It is not an ephemeris.
func MoonPhaseForDate(t time.Time) string {
	return moonPhases[(t.Day()/4)%len(moonPhases)]
}

// ZodiacSign returns the tropical sun sign for the date of t.
func ZodiacSign(t time.Time) string {
	month, day := t.Month(), t.Day()

	// early January still belongs to the previous year's Capricorn
	sign := "Capricorn"
	for _, start := range zodiacStarts {
		if month > start.month || (month == start.month && day >= start.day) {
			sign = start.sign
		}
	}
	return sign
}

// CosmicSnapshotAt computes the snapshot for t.
func CosmicSnapshotAt(t time.Time) models.CosmicSnapshot {
	return models.CosmicSnapshot{
		MoonPhase:   MoonPhaseForDate(t),
		CurrentSign: ZodiacSign(t),
		LastUpdated: t,
	}
}
