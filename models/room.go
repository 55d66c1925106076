package models

import "fmt"

// RoomBaseStatus is the room's own persisted state, used for a date when no
// booking or housekeeping task claims it.
type RoomBaseStatus string

const (
	RoomStatusVacant      RoomBaseStatus = "vacant"
	RoomStatusOccupied    RoomBaseStatus = "occupied"
	RoomStatusReserved    RoomBaseStatus = "reserved"
	RoomStatusCleaning    RoomBaseStatus = "cleaning"
	RoomStatusMaintenance RoomBaseStatus = "maintenance"
	RoomStatusCheckout    RoomBaseStatus = "checkout"
)

type Room struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	RoomNumber string         `json:"roomNumber"`
	Floor      int            `json:"floor" gorm:"index"`
	RoomType   string         `json:"roomType"`
	Status     RoomBaseStatus `json:"status"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case RoomStatusVacant, RoomStatusOccupied, RoomStatusReserved,
		RoomStatusCleaning, RoomStatusMaintenance, RoomStatusCheckout:
		return nil
	}
	return fmt.Errorf("invalid room status: %q", r.Status)
}
