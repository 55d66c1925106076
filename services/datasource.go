package services

import (
	"context"

	"frontdesk/constants"
	"frontdesk/models"
	"frontdesk/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomDataSource is the data-acquisition boundary: the three external
// collections the timeline reads. Records come back already validated and
// typed; retries, if any, live behind this interface.
type RoomDataSource interface {
	GetRooms(ctx context.Context) ([]models.Room, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	GetHousekeepingTasks(ctx context.Context) ([]models.HousekeepingTask, error)
}

// GormDataSource reads the collections from Postgres with a Redis
// read-through cache per collection.
type GormDataSource struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type GormDataSourceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewGormDataSource(opts GormDataSourceOptions) *GormDataSource {
	return &GormDataSource{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

func (s *GormDataSource) GetRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if s.cachedInto(ctx, constants.CacheKeyRooms, &rooms) && len(rooms) > 0 {
		return rooms, nil
	}

	if err := s.db.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	s.cache(ctx, constants.CacheKeyRooms, rooms)
	return rooms, nil
}

func (s *GormDataSource) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if s.cachedInto(ctx, constants.CacheKeyBookings, &bookings) && len(bookings) > 0 {
		return bookings, nil
	}

	if err := s.db.WithContext(ctx).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	s.cache(ctx, constants.CacheKeyBookings, bookings)
	return bookings, nil
}

func (s *GormDataSource) GetHousekeepingTasks(ctx context.Context) ([]models.HousekeepingTask, error) {
	var tasks []models.HousekeepingTask
	if s.cachedInto(ctx, constants.CacheKeyHousekeeping, &tasks) && len(tasks) > 0 {
		return tasks, nil
	}

	if err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	s.cache(ctx, constants.CacheKeyHousekeeping, tasks)
	return tasks, nil
}

// InvalidateCache drops the collection caches so the next fetch reads the
// database. Called before an explicit refresh.
func (s *GormDataSource) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, constants.CacheKeyRooms, constants.CacheKeyBookings, constants.CacheKeyHousekeeping); err != nil {
		s.logger.Error("failed to invalidate collection caches: %v", err)
	}
}

func (s *GormDataSource) cachedInto(ctx context.Context, key string, target interface{}) bool {
	if s.rdb == nil {
		return false
	}
	if err := GetFromRedis(ctx, s.rdb, key, target); err != nil {
		s.logger.Error("redis read for %s failed: %v", key, err)
		return false
	}
	return true
}

func (s *GormDataSource) cache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	if err := SetToRedis(ctx, s.rdb, key, value, constants.SnapshotCacheTTL); err != nil {
		s.logger.Error("redis write for %s failed: %v", key, err)
	}
}
