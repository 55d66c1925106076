package controllers

import (
	"strconv"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type TimelineController struct {
	store *services.SnapshotStore
	rdb   *redis.Client
}

func NewTimelineController(store *services.SnapshotStore, rdb *redis.Client) *TimelineController {
	return &TimelineController{store: store, rdb: rdb}
}

// GetTimeline renders the occupancy grid for the requested window, grouping
// and filters. Query params left empty fall back to the session's last-used
// values, then to defaults.
func (tc *TimelineController) GetTimeline(c *gin.Context) {
	query := tc.parseQuery(c)

	sessionID := c.GetString("sessionId")
	if sessionID != "" && tc.rdb != nil {
		if saved, err := services.GetLastFilters(c.Request.Context(), tc.rdb, sessionID); err == nil && saved != nil {
			query = services.MergeQuery(saved, query)
		}
	}
	applyQueryDefaults(query)

	if err := validator.ValidateTimelineQuery(query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	snap, ok := tc.store.Snapshot()
	if !ok {
		response.ServiceUnavailable(c, "timeline data is still loading")
		return
	}

	anchor, err := validator.ParseDay(query.Date)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if sessionID != "" && tc.rdb != nil {
		if err := services.SaveLastFilters(c.Request.Context(), tc.rdb, sessionID, query); err != nil {
			utils.LogInfo("failed to save last filters for session %s: %v", sessionID, err)
		}
	}

	grid := services.BuildTimelineGrid(snap, anchor, query.View, query.GroupBy, query.Filters)
	if len(grid.Groups) == 0 {
		response.SuccessWithMessage(c, "no rooms match the current filters", grid)
		return
	}
	response.Success(c, grid)
}

// RefreshTimeline drops the collection caches and rebuilds the snapshot.
func (tc *TimelineController) RefreshTimeline(c *gin.Context) {
	if src, ok := tc.store.Source().(*services.GormDataSource); ok {
		src.InvalidateCache(c.Request.Context())
	}
	if err := tc.store.Refresh(c.Request.Context()); err != nil {
		utils.LogError("timeline refresh failed: %v", err)
		response.Error(c, 0, "failed to refresh timeline data")
		return
	}
	response.Success(c, nil)
}

// NavigateTimeline advances or retreats the anchor date for the given view
// mode and returns the new anchor, e.g. for the dashboard's prev/next
// buttons.
func (tc *TimelineController) NavigateTimeline(c *gin.Context) {
	anchor, err := validator.ParseDay(c.DefaultQuery("date", time.Now().UTC().Format(constants.DayFormat)))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view := dto.ViewMode(c.DefaultQuery("view", constants.DefaultViewMode))
	switch view {
	case dto.ViewDay, dto.ViewWeek, dto.ViewMonth:
	default:
		response.BadRequest(c, "view must be one of day, week, month")
		return
	}

	direction := dto.Direction(c.DefaultQuery("direction", string(dto.DirectionNext)))
	switch direction {
	case dto.DirectionPrev, dto.DirectionNext:
	default:
		response.BadRequest(c, "direction must be one of prev, next")
		return
	}

	next := services.Navigate(direction, view, anchor)
	response.Success(c, gin.H{"date": next.Format(constants.DayFormat)})
}

// GetTimelineOptions returns the filter/group option sets derived from the
// current room collection plus the fixed color legend.
func (tc *TimelineController) GetTimelineOptions(c *gin.Context) {
	snap, ok := tc.store.Snapshot()
	if !ok {
		response.ServiceUnavailable(c, "timeline data is still loading")
		return
	}
	response.Success(c, services.TimelineOptions(snap.Rooms))
}

// ClearTimelineFilters forgets the session's saved filters.
func (tc *TimelineController) ClearTimelineFilters(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	if sessionID != "" && tc.rdb != nil {
		if err := services.ClearLastFilters(c.Request.Context(), tc.rdb, sessionID); err != nil {
			response.ServerError(c)
			return
		}
	}
	response.Success(c, nil)
}

func (tc *TimelineController) parseQuery(c *gin.Context) *dto.TimelineQuery {
	query := &dto.TimelineQuery{
		Date:    c.DefaultQuery("date", ""),
		View:    dto.ViewMode(c.DefaultQuery("view", "")),
		GroupBy: dto.GroupBy(c.DefaultQuery("groupBy", "")),
		Filters: dto.RoomFilters{
			RoomType: c.DefaultQuery("roomType", ""),
			Status:   c.DefaultQuery("status", ""),
		},
	}
	if floorStr := c.DefaultQuery("floor", ""); floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			query.Filters.Floor = &floor
		}
	}
	return query
}

func applyQueryDefaults(q *dto.TimelineQuery) {
	if q.Date == "" {
		q.Date = time.Now().UTC().Format(constants.DayFormat)
	}
	if q.View == "" {
		q.View = dto.ViewMode(constants.DefaultViewMode)
	}
	if q.GroupBy == "" {
		q.GroupBy = dto.GroupBy(constants.DefaultGroupBy)
	}
}
