package services

import (
	"testing"
	"time"

	"frontdesk/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWindowDay(t *testing.T) {
	anchor := day(2025, time.June, 15)
	window := ComputeWindow(anchor, dto.ViewDay)

	require.Len(t, window, 1)
	assert.Equal(t, anchor, window[0])
}

func TestComputeWindowWeek(t *testing.T) {
	tests := []struct {
		name       string
		anchor     time.Time
		wantMonday time.Time
	}{
		{"midweek anchor", day(2025, time.June, 11), day(2025, time.June, 9)}, // Wednesday
		{"monday anchor", day(2025, time.June, 9), day(2025, time.June, 9)},
		{"sunday anchor", day(2025, time.June, 15), day(2025, time.June, 9)},
		{"week spanning months", day(2025, time.July, 1), day(2025, time.June, 30)}, // Tuesday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ComputeWindow(tt.anchor, dto.ViewWeek)

			require.Len(t, window, 7)
			assert.Equal(t, tt.wantMonday, window[0])
			assert.Equal(t, time.Monday, window[0].Weekday())
			assert.Equal(t, time.Sunday, window[6].Weekday())
			for i := 1; i < 7; i++ {
				assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i])
			}
		})
	}
}

func TestComputeWindowMonth(t *testing.T) {
	tests := []struct {
		name     string
		anchor   time.Time
		wantDays int
	}{
		{"june has 30 days", day(2025, time.June, 15), 30},
		{"july has 31 days", day(2025, time.July, 1), 31},
		{"february non-leap", day(2025, time.February, 28), 28},
		{"february leap", day(2024, time.February, 10), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ComputeWindow(tt.anchor, dto.ViewMonth)

			require.Len(t, window, tt.wantDays)
			assert.Equal(t, day(tt.anchor.Year(), tt.anchor.Month(), 1), window[0])
			for i := 1; i < len(window); i++ {
				assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i], "no gaps, ascending")
			}
		})
	}
}

func TestComputeWindowNormalizesTimeOfDay(t *testing.T) {
	anchor := time.Date(2025, time.June, 15, 17, 45, 3, 0, time.UTC)
	window := ComputeWindow(anchor, dto.ViewDay)

	require.Len(t, window, 1)
	assert.Equal(t, day(2025, time.June, 15), window[0])
}

func TestNavigate(t *testing.T) {
	anchor := day(2025, time.June, 15)

	tests := []struct {
		name      string
		direction dto.Direction
		mode      dto.ViewMode
		want      time.Time
	}{
		{"next day", dto.DirectionNext, dto.ViewDay, day(2025, time.June, 16)},
		{"prev day", dto.DirectionPrev, dto.ViewDay, day(2025, time.June, 14)},
		{"next week", dto.DirectionNext, dto.ViewWeek, day(2025, time.June, 22)},
		{"prev week", dto.DirectionPrev, dto.ViewWeek, day(2025, time.June, 8)},
		// Month navigation is a flat 30-day step.
		{"next month", dto.DirectionNext, dto.ViewMonth, day(2025, time.July, 15)},
		{"prev month", dto.DirectionPrev, dto.ViewMonth, day(2025, time.May, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Navigate(tt.direction, tt.mode, anchor))
		})
	}
}
