package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no-show"
	BookingStatusCheckedOut BookingStatus = "checked-out"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is read here as an external snapshot; the reservation service owns
// it. Check-in/check-out dates arrive as "2006-01-02" strings and describe a
// half-open stay [CheckInDate, CheckOutDate): the check-out day itself is
// free for same-day turnover.
type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RoomID        uint          `json:"roomId" gorm:"index"`
	CheckInDate   string        `json:"checkInDate"`
	CheckOutDate  string        `json:"checkOutDate"`
	Status        BookingStatus `json:"status"`
	GuestName     string        `json:"guestName"`
	GuestPhone    string        `json:"guestPhone,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}
