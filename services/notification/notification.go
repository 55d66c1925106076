package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service pushes user-visible notifications to connected dashboard clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// RefreshFailedMessage builds the notification for a failed snapshot
// refresh. The grid keeps its last successful state in that case.
func RefreshFailedMessage(source string, err error) string {
	return fmt.Sprintf("timeline refresh failed: could not load %s: %v", source, err)
}

// RefreshedMessage builds the notification for a completed refresh.
func RefreshedMessage(rooms, bookings, tasks int) string {
	return fmt.Sprintf("timeline refreshed: %d rooms, %d bookings, %d housekeeping tasks", rooms, bookings, tasks)
}
