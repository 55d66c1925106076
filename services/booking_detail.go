package services

import (
	"fmt"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// Follow-on actions for a selected booking, plus the selection-independent
// new-booking action.
const (
	ActionView               = "view"
	ActionEditBooking        = "edit-booking"
	ActionAssignHousekeeping = "assign-housekeeping"
	ActionMarkMaintenance    = "mark-maintenance"
	ActionNewBooking         = "new-booking"
)

// NewBookingAction is always available, independent of any selection.
func NewBookingAction() dto.BookingAction {
	return dto.BookingAction{Action: ActionNewBooking, Route: "/reservations"}
}

// ResolveBookingActions produces the fixed action set for a booking entry,
// each mapped to its navigation target. The view action carries no route:
// it is an in-place detail read.
func ResolveBookingActions(entry models.OccupancyEntry) ([]dto.BookingAction, error) {
	if entry.Kind != models.EntryBooking || entry.Booking == nil {
		return nil, errors.ErrNotBookingEntry
	}
	b := entry.Booking
	return []dto.BookingAction{
		{Action: ActionView, Route: ""},
		{Action: ActionEditBooking, Route: fmt.Sprintf("/reservations?edit=%d", b.ID)},
		{Action: ActionAssignHousekeeping, Route: fmt.Sprintf("/housekeeping?room=%d", b.RoomID)},
		{Action: ActionMarkMaintenance, Route: fmt.Sprintf("/maintenance?room=%d", b.RoomID)},
	}, nil
}

// ResolveBookingDetail produces the in-place detail view for a booking
// entry.
func ResolveBookingDetail(entry models.OccupancyEntry) (dto.BookingDetail, error) {
	if entry.Kind != models.EntryBooking || entry.Booking == nil {
		return dto.BookingDetail{}, errors.ErrNotBookingEntry
	}
	b := entry.Booking
	return dto.BookingDetail{
		ID:            b.ID,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
	}, nil
}

// SelectionState is the state of the grid's selection machine.
type SelectionState int

const (
	SelectionIdle SelectionState = iota
	SelectionBooking
)

// BookingSelection is the small state machine behind cell clicks: Idle until
// a booking cell is selected, back to Idle on close or once an action is
// chosen. Clicking a housekeeping or base-status cell does not leave Idle.
type BookingSelection struct {
	state SelectionState
	entry models.OccupancyEntry
}

func NewBookingSelection() *BookingSelection {
	return &BookingSelection{state: SelectionIdle}
}

func (s *BookingSelection) State() SelectionState {
	return s.state
}

// Selected returns the selected entry, valid only in the SelectionBooking
// state.
func (s *BookingSelection) Selected() (models.OccupancyEntry, bool) {
	if s.state != SelectionBooking {
		return models.OccupancyEntry{}, false
	}
	return s.entry, true
}

// SelectCell transitions to SelectionBooking when the clicked entry is a
// booking; any other cell kind leaves the machine unchanged. Reports whether
// the selection changed.
func (s *BookingSelection) SelectCell(entry models.OccupancyEntry) bool {
	if entry.Kind != models.EntryBooking || entry.Booking == nil {
		return false
	}
	s.state = SelectionBooking
	s.entry = entry
	return true
}

// Close drops the selection.
func (s *BookingSelection) Close() {
	s.state = SelectionIdle
	s.entry = models.OccupancyEntry{}
}

// ChooseAction resolves the chosen action for the current selection,
// returning the navigation request to emit, and returns the machine to
// Idle.
func (s *BookingSelection) ChooseAction(action string) (dto.BookingAction, error) {
	if s.state != SelectionBooking {
		return dto.BookingAction{}, errors.ErrNoSelection
	}

	actions, err := ResolveBookingActions(s.entry)
	if err != nil {
		return dto.BookingAction{}, err
	}

	for _, a := range actions {
		if a.Action == action {
			s.Close()
			return a, nil
		}
	}
	return dto.BookingAction{}, errors.ErrUnknownAction
}
