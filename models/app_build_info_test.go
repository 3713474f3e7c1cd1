package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_Lines(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	assert.Equal(t, []string{
		"Build version: 1.2.0",
		"Build date: 2026-10-01",
		"Build commit: abc123",
	}, info.Lines())
	assert.Equal(t, "1.2.0 (abc123, 2026-10-01)", info.String())
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		in   string
		want Timeframe
	}{
		{"today", TimeframeToday},
		{" Week ", TimeframeWeek},
		{"month", TimeframeMonth},
		{"all", TimeframeAll},
		{"", TimeframeAll},
		{"decade", TimeframeAll},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeframe(tt.in))
		})
	}
}

func TestChatRequest_ChatKey(t *testing.T) {
	id := int64(42)

	assert.Equal(t, "42", ChatRequest{NoteID: &id, ChatType: "goals"}.ChatKey())
	assert.Equal(t, "goals", ChatRequest{ChatType: "goals"}.ChatKey())
	assert.Equal(t, GeneralChatKey, ChatRequest{}.ChatKey())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("chores").Valid())
	assert.Equal(t, CategoryRandom, Categories[len(Categories)-1])
}
