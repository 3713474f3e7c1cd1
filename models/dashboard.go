package models

import (
	"strings"
	"time"
)

// Timeframe restricts notes by creation time.
type Timeframe string

const (
	TimeframeToday Timeframe = "today"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

// ParseTimeframe maps a query value to a Timeframe, defaulting to
// TimeframeAll for empty or unknown values.
func ParseTimeframe(s string) Timeframe {
	switch tf := Timeframe(strings.ToLower(strings.TrimSpace(s))); tf {
	case TimeframeToday, TimeframeWeek, TimeframeMonth:
		return tf
	default:
		return TimeframeAll
	}
}

// Since returns the lower creation-time bound of tf relative to now.
// The zero time means no bound.
func (tf Timeframe) Since(now time.Time) time.Time {
	switch tf {
	case TimeframeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case TimeframeWeek:
		return now.AddDate(0, 0, -7)
	case TimeframeMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// NoteFilter narrows a note listing. Zero values mean "no restriction".
type NoteFilter struct {
	Category  Category
	Search    string
	Since     time.Time
	Processed *bool
	Limit     uint64
}

// CategoryCount is the number of notes in one category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// DashboardStats aggregates the notes of a timeframe.
type DashboardStats struct {
	TotalDumps        int             `json:"totalDumps"`
	ProcessedDumps    int             `json:"processedDumps"`
	UnprocessedDumps  int             `json:"unprocessedDumps"`
	CompletionPercent int             `json:"completionPercent"`
	RecentActivity    int             `json:"recentActivity"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
	TopCategories     []CategoryCount `json:"topCategories"`
}
