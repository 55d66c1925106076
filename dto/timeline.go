package dto

import "frontdesk/models"

// ViewMode is the granularity of the visible date window.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// GroupBy is the dimension rooms are partitioned by.
type GroupBy string

const (
	GroupByRoomType GroupBy = "roomType"
	GroupByFloor    GroupBy = "floor"
)

// Direction moves the anchor date backward or forward.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// RoomFilters holds the optional room constraints. Absent or empty fields
// impose no constraint; present ones are AND-combined.
type RoomFilters struct {
	RoomType string `json:"roomType,omitempty" form:"roomType"`
	Floor    *int   `json:"floor,omitempty" form:"floor"`
	Status   string `json:"status,omitempty" form:"status"`
}

// TimelineQuery is the incoming grid request. Date is the anchor day in
// "2006-01-02" form; empty means today.
type TimelineQuery struct {
	Date    string   `json:"date,omitempty" form:"date"`
	View    ViewMode `json:"view,omitempty" form:"view"`
	GroupBy GroupBy  `json:"groupBy,omitempty" form:"groupBy"`
	Filters RoomFilters
}

// TimelineRow is one room with its resolved cell per visible date, in date
// order.
type TimelineRow struct {
	Room  models.Room             `json:"room"`
	Cells []models.OccupancyEntry `json:"cells"`
}

// TimelineGroup is one labeled section of the grid.
type TimelineGroup struct {
	Label string        `json:"label"`
	Rooms []TimelineRow `json:"rooms"`
}

// TimelineGrid is the full render model: dates across, grouped rooms down.
type TimelineGrid struct {
	Dates  []string        `json:"dates"`
	Groups []TimelineGroup `json:"groups"`
}

// LegendEntry pairs a display category with its color name.
type LegendEntry struct {
	Category models.ColorCategory `json:"category"`
	Color    string               `json:"color"`
}

// TimelineOptions is the filter/group option set derived from the current
// room collection, plus the fixed color legend.
type TimelineOptions struct {
	RoomTypes []string                `json:"roomTypes"`
	Floors    []int                   `json:"floors"`
	Statuses  []models.RoomBaseStatus `json:"statuses"`
	Legend    []LegendEntry           `json:"legend"`
}
