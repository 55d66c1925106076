package validator

import (
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// ParseDay parses a "2006-01-02" calendar day into a midnight-UTC time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DayFormat, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date, expected format "+constants.DayFormat, err)
	}
	return t, nil
}

// ValidateTimelineQuery checks a timeline request after defaults were
// applied.
func ValidateTimelineQuery(q *dto.TimelineQuery) error {
	if q.Date != "" {
		if _, err := ParseDay(q.Date); err != nil {
			return err
		}
	}

	switch q.View {
	case dto.ViewDay, dto.ViewWeek, dto.ViewMonth:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidViewMode, "view must be one of day, week, month", nil)
	}

	switch q.GroupBy {
	case dto.GroupByRoomType, dto.GroupByFloor:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidGroupBy, "groupBy must be one of roomType, floor", nil)
	}

	if q.Filters.Status != "" {
		r := models.Room{Status: models.RoomBaseStatus(q.Filters.Status)}
		if err := r.ValidateStatus(); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidStatus, "invalid status filter", err)
		}
	}

	return nil
}

// ValidateBookingDates reports whether both stay dates parse. Records that
// fail are excluded from resolution, never fatal.
func ValidateBookingDates(b *models.Booking) error {
	if _, err := ParseDay(b.CheckInDate); err != nil {
		return err
	}
	if _, err := ParseDay(b.CheckOutDate); err != nil {
		return err
	}
	return nil
}

// ValidateTaskDate reports whether the scheduled day parses.
func ValidateTaskDate(t *models.HousekeepingTask) error {
	_, err := ParseDay(t.ScheduledDate)
	return err
}
