package models

import "time"

// EntryKind tags what an OccupancyEntry carries. Renderers switch over it
// and must handle all three variants.
type EntryKind string

const (
	EntryBooking      EntryKind = "booking"
	EntryHousekeeping EntryKind = "housekeeping"
	EntryBaseStatus   EntryKind = "baseStatus"
)

// ColorCategory is the display category a grid cell renders with.
type ColorCategory string

const (
	ColorBooked       ColorCategory = "booked"       // blue
	ColorCheckedIn    ColorCategory = "checked-in"   // green
	ColorCancelled    ColorCategory = "cancelled"    // red
	ColorNoShow       ColorCategory = "no-show"      // purple
	ColorHousekeeping ColorCategory = "housekeeping" // yellow
	ColorMaintenance  ColorCategory = "maintenance"  // orange

	// Neutral categories, one per remaining base status.
	ColorVacant   ColorCategory = "vacant"
	ColorOccupied ColorCategory = "occupied"
	ColorReserved ColorCategory = "reserved"
	ColorCleaning ColorCategory = "cleaning"
	ColorCheckout ColorCategory = "checkout"
)

// OccupancyEntry is the resolved display value for one room on one date.
// Exactly one of Booking/Task is set, matching Kind; BaseStatus is set for
// EntryBaseStatus. Derived per render cycle, never persisted.
type OccupancyEntry struct {
	RoomID     uint              `json:"roomId"`
	Date       time.Time         `json:"date"`
	Kind       EntryKind         `json:"kind"`
	Booking    *Booking          `json:"booking,omitempty"`
	Task       *HousekeepingTask `json:"task,omitempty"`
	BaseStatus RoomBaseStatus    `json:"baseStatus,omitempty"`
	Color      ColorCategory     `json:"color"`
}

// ColorForBooking maps a booking status to its display category.
// A checked-out stay renders with the neutral checkout category.
func ColorForBooking(s BookingStatus) ColorCategory {
	switch s {
	case BookingStatusConfirmed:
		return ColorBooked
	case BookingStatusCheckedIn:
		return ColorCheckedIn
	case BookingStatusCancelled:
		return ColorCancelled
	case BookingStatusNoShow:
		return ColorNoShow
	case BookingStatusCheckedOut:
		return ColorCheckout
	}
	return ColorBooked
}

// ColorForBaseStatus maps a room base status to its display category.
func ColorForBaseStatus(s RoomBaseStatus) ColorCategory {
	switch s {
	case RoomStatusVacant:
		return ColorVacant
	case RoomStatusOccupied:
		return ColorOccupied
	case RoomStatusReserved:
		return ColorReserved
	case RoomStatusCleaning:
		return ColorCleaning
	case RoomStatusMaintenance:
		return ColorMaintenance
	case RoomStatusCheckout:
		return ColorCheckout
	}
	return ColorVacant
}
