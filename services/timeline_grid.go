package services

import (
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/validator"
)

// Snapshot is one immutable, complete read of the three external
// collections. The grid is only ever built from a whole snapshot; snapshots
// are replaced atomically, never patched.
type Snapshot struct {
	Rooms    []models.Room
	Bookings []models.Booking
	Tasks    []models.HousekeepingTask
}

// SanitizeSnapshot drops bookings and tasks whose dates do not parse, so a
// single malformed record cannot abort a grid build. Each exclusion is
// logged as a data-quality warning.
func SanitizeSnapshot(snap Snapshot, log logger.Logger) Snapshot {
	clean := Snapshot{Rooms: snap.Rooms}

	for _, b := range snap.Bookings {
		if err := validator.ValidateBookingDates(&b); err != nil {
			log.Warn("excluding booking %d from timeline, unparseable date: %v", b.ID, err)
			continue
		}
		clean.Bookings = append(clean.Bookings, b)
	}

	for _, t := range snap.Tasks {
		if err := validator.ValidateTaskDate(&t); err != nil {
			log.Warn("excluding housekeeping task %d from timeline, unparseable date: %v", t.ID, err)
			continue
		}
		clean.Tasks = append(clean.Tasks, t)
	}

	return clean
}

// BuildTimelineGrid composes the full render model: filter the rooms, group
// them, then resolve every (room, date) cell of the window. Pure and
// deterministic; safe to call on every input change.
func BuildTimelineGrid(snap Snapshot, anchor time.Time, view dto.ViewMode, groupBy dto.GroupBy, filters dto.RoomFilters) dto.TimelineGrid {
	window := ComputeWindow(anchor, view)

	dates := make([]string, 0, len(window))
	for _, d := range window {
		dates = append(dates, d.Format(constants.DayFormat))
	}

	rooms := FilterRooms(snap.Rooms, filters)
	groups := GroupRooms(rooms, groupBy)

	grid := dto.TimelineGrid{Dates: dates, Groups: make([]dto.TimelineGroup, 0, len(groups))}
	for _, group := range groups {
		g := dto.TimelineGroup{Label: group.Label, Rooms: make([]dto.TimelineRow, 0, len(group.Rooms))}
		for _, room := range group.Rooms {
			row := dto.TimelineRow{Room: room, Cells: make([]models.OccupancyEntry, 0, len(window))}
			for _, date := range window {
				row.Cells = append(row.Cells, ResolveOccupancy(room, date, snap.Bookings, snap.Tasks))
			}
			g.Rooms = append(g.Rooms, row)
		}
		grid.Groups = append(grid.Groups, g)
	}
	return grid
}

// ColorLegend is the fixed 6-entry legend every grid renderer shares.
func ColorLegend() []dto.LegendEntry {
	return []dto.LegendEntry{
		{Category: models.ColorBooked, Color: "blue"},
		{Category: models.ColorCheckedIn, Color: "green"},
		{Category: models.ColorCancelled, Color: "red"},
		{Category: models.ColorNoShow, Color: "purple"},
		{Category: models.ColorHousekeeping, Color: "yellow"},
		{Category: models.ColorMaintenance, Color: "orange"},
	}
}

// TimelineOptions derives the filter/group option sets from the current
// room collection.
func TimelineOptions(rooms []models.Room) dto.TimelineOptions {
	return dto.TimelineOptions{
		RoomTypes: RoomTypeOptions(rooms),
		Floors:    FloorOptions(rooms),
		Statuses: []models.RoomBaseStatus{
			models.RoomStatusVacant,
			models.RoomStatusOccupied,
			models.RoomStatusReserved,
			models.RoomStatusCleaning,
			models.RoomStatusMaintenance,
			models.RoomStatusCheckout,
		},
		Legend: ColorLegend(),
	}
}
