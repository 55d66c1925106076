package services

import (
	"context"
	"sync"

	"frontdesk/services/logger"
	"frontdesk/services/notification"
)

// SnapshotStore holds the latest complete snapshot of the three external
// collections. The grid is never built before all three have resolved at
// least once, a newer refresh supersedes an in-flight one (stale results
// are discarded whole), and a cancelled refresh writes nothing.
type SnapshotStore struct {
	mu         sync.Mutex
	snap       Snapshot
	ready      bool
	generation uint64

	source   RoomDataSource
	logger   logger.Logger
	notifier notification.Service
}

type SnapshotStoreOptions struct {
	Source   RoomDataSource
	Logger   logger.Logger
	Notifier notification.Service
}

func NewSnapshotStore(opts SnapshotStoreOptions) *SnapshotStore {
	return &SnapshotStore{
		source:   opts.Source,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// Source exposes the data source backing this store, e.g. for cache
// invalidation before an explicit refresh.
func (s *SnapshotStore) Source() RoomDataSource {
	return s.source
}

// Snapshot returns the current snapshot. ok is false until the first
// complete refresh has landed (the loading guard).
func (s *SnapshotStore) Snapshot() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.ready
}

// Refresh fetches the three collections concurrently and replaces the
// snapshot atomically once all of them succeed. On any failure the previous
// snapshot is kept and the failure is pushed as a user-visible notification.
func (s *SnapshotStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		wg   sync.WaitGroup
		next Snapshot

		errRooms, errBookings, errTasks error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		next.Rooms, errRooms = s.source.GetRooms(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Bookings, errBookings = s.source.GetBookings(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Tasks, errTasks = s.source.GetHousekeepingTasks(ctx)
	}()
	wg.Wait()

	// Torn down mid-fetch: the pending result becomes a no-op.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := s.reportFetchErr("rooms", errRooms); err != nil {
		return err
	}
	if err := s.reportFetchErr("bookings", errBookings); err != nil {
		return err
	}
	if err := s.reportFetchErr("housekeeping tasks", errTasks); err != nil {
		return err
	}

	next = SanitizeSnapshot(next, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer refresh superseded this one; drop the stale result.
		s.logger.Debug("discarding superseded snapshot (generation %d)", gen)
		return nil
	}
	s.snap = next
	s.ready = true

	if s.notifier != nil {
		msg := notification.RefreshedMessage(len(next.Rooms), len(next.Bookings), len(next.Tasks))
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("failed to broadcast refresh: %v", err)
		}
	}
	return nil
}

func (s *SnapshotStore) reportFetchErr(source string, err error) error {
	if err == nil {
		return nil
	}
	s.logger.Error("failed to load %s: %v", source, err)
	if s.notifier != nil {
		if nerr := s.notifier.SendMessage(notification.RefreshFailedMessage(source, err)); nerr != nil {
			s.logger.Error("failed to broadcast fetch failure: %v", nerr)
		}
	}
	return err
}
