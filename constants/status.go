package constants

import "time"

// DayFormat is the calendar-day layout used everywhere a date crosses a
// boundary: upstream records, query params and grid output.
const DayFormat = "2006-01-02"

// Timeline defaults
const (
	DefaultViewMode = "week"
	DefaultGroupBy  = "roomType"
)

// Redis cache keys
const (
	CacheKeyRooms        = "rooms:all"
	CacheKeyBookings     = "bookings:all"
	CacheKeyHousekeeping = "housekeeping:all"
)

// Cache lifetimes
const (
	SnapshotCacheTTL = 10 * time.Minute
	LastFiltersTTL   = 30 * time.Minute
)

// RefreshSpec is the cron schedule for the periodic snapshot refresh.
const RefreshSpec = "@every 5m"
