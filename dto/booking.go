package dto

import "frontdesk/models"

// BookingDetail is the in-place detail view for a selected booking cell.
type BookingDetail struct {
	ID            uint                 `json:"id"`
	RoomID        uint                 `json:"roomId"`
	GuestName     string               `json:"guestName"`
	GuestPhone    string               `json:"guestPhone,omitempty"`
	CheckInDate   string               `json:"checkInDate"`
	CheckOutDate  string               `json:"checkOutDate"`
	Status        models.BookingStatus `json:"status"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// BookingAction maps one follow-on action to its navigation target. An empty
// route means the action is handled in place (no navigation).
type BookingAction struct {
	Action string `json:"action"`
	Route  string `json:"route"`
}

// BookingActionsResponse lists the actions available for a selected booking
// together with the selection-independent new-booking action.
type BookingActionsResponse struct {
	Actions    []BookingAction `json:"actions"`
	NewBooking BookingAction   `json:"newBooking"`
}
