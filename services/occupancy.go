package services

import (
	"time"

	"frontdesk/models"
	"frontdesk/validator"
)

// ResolveOccupancy decides what one (room, date) cell displays. Precedence,
// first match wins:
//
//  1. a booking whose half-open stay [checkIn, checkOut) covers the date;
//     overlapping bookings resolve to the lowest booking ID
//  2. a housekeeping task scheduled exactly on the date
//  3. the room's own base status
//
// Records with unparseable dates are skipped, never fatal. Pure: identical
// inputs always produce an identical entry.
func ResolveOccupancy(room models.Room, date time.Time, bookings []models.Booking, tasks []models.HousekeepingTask) models.OccupancyEntry {
	date = atMidnight(date)

	if b := matchBooking(room.ID, date, bookings); b != nil {
		return models.OccupancyEntry{
			RoomID:  room.ID,
			Date:    date,
			Kind:    models.EntryBooking,
			Booking: b,
			Color:   models.ColorForBooking(b.Status),
		}
	}

	if t := matchTask(room.ID, date, tasks); t != nil {
		return models.OccupancyEntry{
			RoomID: room.ID,
			Date:   date,
			Kind:   models.EntryHousekeeping,
			Task:   t,
			Color:  models.ColorHousekeeping,
		}
	}

	return models.OccupancyEntry{
		RoomID:     room.ID,
		Date:       date,
		Kind:       models.EntryBaseStatus,
		BaseStatus: room.Status,
		Color:      models.ColorForBaseStatus(room.Status),
	}
}

func matchBooking(roomID uint, date time.Time, bookings []models.Booking) *models.Booking {
	var match *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.RoomID != roomID {
			continue
		}
		checkIn, err := validator.ParseDay(b.CheckInDate)
		if err != nil {
			continue
		}
		checkOut, err := validator.ParseDay(b.CheckOutDate)
		if err != nil {
			continue
		}
		// Half-open stay: the check-out day itself is not claimed.
		if date.Before(checkIn) || !date.Before(checkOut) {
			continue
		}
		if match == nil || b.ID < match.ID {
			match = b
		}
	}
	return match
}

func matchTask(roomID uint, date time.Time, tasks []models.HousekeepingTask) *models.HousekeepingTask {
	for i := range tasks {
		t := &tasks[i]
		if t.RoomID != roomID {
			continue
		}
		scheduled, err := validator.ParseDay(t.ScheduledDate)
		if err != nil {
			continue
		}
		if scheduled.Equal(date) {
			return t
		}
	}
	return nil
}
