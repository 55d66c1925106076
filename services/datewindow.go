package services

import (
	"time"

	"frontdesk/dto"
)

// atMidnight normalizes a time to its calendar day at midnight UTC so date
// comparisons are pure day comparisons.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeWindow turns an anchor date and view mode into the ordered list of
// visible dates.
//
//	day:   just the anchor
//	week:  Monday through Sunday of the ISO week containing the anchor
//	month: every calendar day of the anchor's month
func ComputeWindow(anchor time.Time, mode dto.ViewMode) []time.Time {
	anchor = atMidnight(anchor)

	switch mode {
	case dto.ViewDay:
		return []time.Time{anchor}

	case dto.ViewWeek:
		// time.Weekday counts Sunday as 0; shift so Monday starts the week.
		offset := (int(anchor.Weekday()) + 6) % 7
		monday := anchor.AddDate(0, 0, -offset)
		dates := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			dates = append(dates, monday.AddDate(0, 0, i))
		}
		return dates

	case dto.ViewMonth:
		firstDay := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastDay := firstDay.AddDate(0, 1, -1)
		var dates []time.Time
		for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
			dates = append(dates, day)
		}
		return dates
	}

	return []time.Time{anchor}
}

// Navigate advances or retreats the anchor date for the given view mode.
// The month step is a flat 30 days, matching the dashboard's historical
// behavior across months of different lengths.
func Navigate(direction dto.Direction, mode dto.ViewMode, anchor time.Time) time.Time {
	anchor = atMidnight(anchor)

	step := 1
	switch mode {
	case dto.ViewWeek:
		step = 7
	case dto.ViewMonth:
		step = 30
	}

	if direction == dto.DirectionPrev {
		step = -step
	}
	return anchor.AddDate(0, 0, step)
}
