package controllers

import (
	"strconv"
	"time"

	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	store *services.SnapshotStore
}

func NewBookingController(store *services.SnapshotStore) *BookingController {
	return &BookingController{store: store}
}

// GetBookingDetail serves the in-place detail view behind the grid's "view"
// action.
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	entry, ok := bc.bookingEntry(c)
	if !ok {
		return
	}

	detail, err := services.ResolveBookingDetail(entry)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, detail)
}

// GetBookingActions lists the follow-on actions for a booking together with
// their navigation targets, plus the always-available new-booking action.
func (bc *BookingController) GetBookingActions(c *gin.Context) {
	entry, ok := bc.bookingEntry(c)
	if !ok {
		return
	}

	actions, err := services.ResolveBookingActions(entry)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.BookingActionsResponse{
		Actions:    actions,
		NewBooking: services.NewBookingAction(),
	})
}

func (bc *BookingController) bookingEntry(c *gin.Context) (models.OccupancyEntry, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return models.OccupancyEntry{}, false
	}

	snap, ok := bc.store.Snapshot()
	if !ok {
		response.ServiceUnavailable(c, "timeline data is still loading")
		return models.OccupancyEntry{}, false
	}

	for i := range snap.Bookings {
		b := &snap.Bookings[i]
		if b.ID == uint(id) {
			return models.OccupancyEntry{
				RoomID:  b.RoomID,
				Date:    time.Time{},
				Kind:    models.EntryBooking,
				Booking: b,
				Color:   models.ColorForBooking(b.Status),
			}, true
		}
	}

	response.NotFound(c)
	return models.OccupancyEntry{}, false
}
