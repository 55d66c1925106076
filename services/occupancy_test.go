package services

import (
	"testing"
	"time"

	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOccupancyBookingWindow(t *testing.T) {
	room := models.Room{ID: 101, RoomNumber: "101", Status: models.RoomStatusVacant}
	bookings := []models.Booking{
		{ID: 1, RoomID: 101, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03", Status: models.BookingStatusConfirmed},
	}

	tests := []struct {
		name     string
		date     time.Time
		wantKind models.EntryKind
	}{
		{"check-in day belongs to the stay", day(2025, time.June, 1), models.EntryBooking},
		{"middle of the stay", day(2025, time.June, 2), models.EntryBooking},
		{"check-out day is free for turnover", day(2025, time.June, 3), models.EntryBaseStatus},
		{"day before check-in", day(2025, time.May, 31), models.EntryBaseStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ResolveOccupancy(room, tt.date, bookings, nil)

			assert.Equal(t, tt.wantKind, entry.Kind)
			if tt.wantKind == models.EntryBooking {
				require.NotNil(t, entry.Booking)
				assert.Equal(t, uint(1), entry.Booking.ID)
			} else {
				assert.Equal(t, models.RoomStatusVacant, entry.BaseStatus)
			}
		})
	}
}

func TestResolveOccupancyPrecedence(t *testing.T) {
	room := models.Room{ID: 7, Status: models.RoomStatusMaintenance}
	date := day(2025, time.June, 10)
	bookings := []models.Booking{
		{ID: 3, RoomID: 7, CheckInDate: "2025-06-09", CheckOutDate: "2025-06-12", Status: models.BookingStatusCheckedIn},
	}
	tasks := []models.HousekeepingTask{
		{ID: 5, RoomID: 7, ScheduledDate: "2025-06-10", Status: models.HousekeepingStatusPending},
	}

	t.Run("booking beats housekeeping and base status", func(t *testing.T) {
		entry := ResolveOccupancy(room, date, bookings, tasks)
		assert.Equal(t, models.EntryBooking, entry.Kind)
	})

	t.Run("housekeeping beats base status", func(t *testing.T) {
		entry := ResolveOccupancy(room, date, nil, tasks)
		assert.Equal(t, models.EntryHousekeeping, entry.Kind)
		require.NotNil(t, entry.Task)
		assert.Equal(t, uint(5), entry.Task.ID)
		assert.Equal(t, models.ColorHousekeeping, entry.Color)
	})

	t.Run("base status is the fallback", func(t *testing.T) {
		entry := ResolveOccupancy(room, date, nil, nil)
		assert.Equal(t, models.EntryBaseStatus, entry.Kind)
		assert.Equal(t, models.RoomStatusMaintenance, entry.BaseStatus)
		assert.Equal(t, models.ColorMaintenance, entry.Color)
	})
}

func TestResolveOccupancyOverlappingBookings(t *testing.T) {
	// Nothing upstream prevents overlap; the lowest booking ID must win,
	// deterministically, regardless of slice order.
	room := models.Room{ID: 9, Status: models.RoomStatusVacant}
	date := day(2025, time.June, 10)
	a := models.Booking{ID: 12, RoomID: 9, CheckInDate: "2025-06-08", CheckOutDate: "2025-06-12", Status: models.BookingStatusConfirmed}
	b := models.Booking{ID: 4, RoomID: 9, CheckInDate: "2025-06-10", CheckOutDate: "2025-06-11", Status: models.BookingStatusConfirmed}

	for _, bookings := range [][]models.Booking{{a, b}, {b, a}} {
		entry := ResolveOccupancy(room, date, bookings, nil)
		require.Equal(t, models.EntryBooking, entry.Kind)
		require.NotNil(t, entry.Booking)
		assert.Equal(t, uint(4), entry.Booking.ID)
	}
}

func TestResolveOccupancyHousekeepingExactDayOnly(t *testing.T) {
	room := models.Room{ID: 2, Status: models.RoomStatusVacant}
	tasks := []models.HousekeepingTask{
		{ID: 1, RoomID: 2, ScheduledDate: "2025-06-10"},
	}

	assert.Equal(t, models.EntryHousekeeping, ResolveOccupancy(room, day(2025, time.June, 10), nil, tasks).Kind)
	assert.Equal(t, models.EntryBaseStatus, ResolveOccupancy(room, day(2025, time.June, 11), nil, tasks).Kind)
	assert.Equal(t, models.EntryBaseStatus, ResolveOccupancy(room, day(2025, time.June, 9), nil, tasks).Kind)
}

func TestResolveOccupancyIgnoresOtherRooms(t *testing.T) {
	room := models.Room{ID: 1, Status: models.RoomStatusVacant}
	bookings := []models.Booking{
		{ID: 1, RoomID: 2, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-30", Status: models.BookingStatusConfirmed},
	}
	tasks := []models.HousekeepingTask{
		{ID: 1, RoomID: 2, ScheduledDate: "2025-06-10"},
	}

	entry := ResolveOccupancy(room, day(2025, time.June, 10), bookings, tasks)
	assert.Equal(t, models.EntryBaseStatus, entry.Kind)
}

func TestResolveOccupancySkipsMalformedDates(t *testing.T) {
	room := models.Room{ID: 1, Status: models.RoomStatusVacant}
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, CheckInDate: "06/10/2025", CheckOutDate: "2025-06-12", Status: models.BookingStatusConfirmed},
	}
	tasks := []models.HousekeepingTask{
		{ID: 1, RoomID: 1, ScheduledDate: "not-a-date"},
	}

	entry := ResolveOccupancy(room, day(2025, time.June, 10), bookings, tasks)
	assert.Equal(t, models.EntryBaseStatus, entry.Kind, "malformed records are excluded, not fatal")
}

func TestResolveOccupancyIsReferentiallyStable(t *testing.T) {
	room := models.Room{ID: 1, Status: models.RoomStatusVacant}
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-05", Status: models.BookingStatusConfirmed},
	}

	first := ResolveOccupancy(room, day(2025, time.June, 2), bookings, nil)
	second := ResolveOccupancy(room, day(2025, time.June, 2), bookings, nil)
	assert.Equal(t, first, second)
}

func TestColorForBooking(t *testing.T) {
	tests := []struct {
		status models.BookingStatus
		want   models.ColorCategory
	}{
		{models.BookingStatusConfirmed, models.ColorBooked},
		{models.BookingStatusCheckedIn, models.ColorCheckedIn},
		{models.BookingStatusCancelled, models.ColorCancelled},
		{models.BookingStatusNoShow, models.ColorNoShow},
		{models.BookingStatusCheckedOut, models.ColorCheckout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.ColorForBooking(tt.status))
	}
}

func TestColorForBaseStatus(t *testing.T) {
	tests := []struct {
		status models.RoomBaseStatus
		want   models.ColorCategory
	}{
		{models.RoomStatusVacant, models.ColorVacant},
		{models.RoomStatusOccupied, models.ColorOccupied},
		{models.RoomStatusReserved, models.ColorReserved},
		{models.RoomStatusCleaning, models.ColorCleaning},
		{models.RoomStatusMaintenance, models.ColorMaintenance},
		{models.RoomStatusCheckout, models.ColorCheckout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.ColorForBaseStatus(tt.status))
	}
}
