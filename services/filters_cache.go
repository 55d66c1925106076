package services

import (
	"context"
	"encoding/json"

	"frontdesk/constants"
	"frontdesk/dto"

	"github.com/redis/go-redis/v9"
)

// Last-used timeline filters, kept per dashboard session so a reload lands
// on the same view.

func SaveLastFilters(ctx context.Context, rdb *redis.Client, sessionID string, q *dto.TimelineQuery) error {
	b, _ := json.Marshal(q)
	return rdb.Set(ctx, "last_filters:"+sessionID, b, constants.LastFiltersTTL).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.TimelineQuery, error) {
	val, err := rdb.Get(ctx, "last_filters:"+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var q dto.TimelineQuery
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return rdb.Del(ctx, "last_filters:"+sessionID).Err()
}

// MergeQuery fills the blanks of a new request from the previous one, so a
// request that only changes the anchor date keeps its filters.
func MergeQuery(old, new *dto.TimelineQuery) *dto.TimelineQuery {
	new.Date = orString(new.Date, old.Date)
	new.View = dto.ViewMode(orString(string(new.View), string(old.View)))
	new.GroupBy = dto.GroupBy(orString(string(new.GroupBy), string(old.GroupBy)))
	new.Filters.RoomType = orString(new.Filters.RoomType, old.Filters.RoomType)
	new.Filters.Status = orString(new.Filters.Status, old.Filters.Status)
	new.Filters.Floor = orIntPointer(new.Filters.Floor, old.Filters.Floor)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
