package services

import (
	"sort"

	"frontdesk/dto"
	"frontdesk/models"
)

// FilterRooms applies the optional room constraints, AND-combined, keeping
// the original room order.
func FilterRooms(rooms []models.Room, f dto.RoomFilters) []models.Room {
	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if f.RoomType != "" && room.RoomType != f.RoomType {
			continue
		}
		if f.Floor != nil && room.Floor != *f.Floor {
			continue
		}
		if f.Status != "" && room.Status != models.RoomBaseStatus(f.Status) {
			continue
		}
		filtered = append(filtered, room)
	}
	return filtered
}

// RoomTypeOptions returns the distinct room-type names present in the room
// collection, in first-occurrence order.
func RoomTypeOptions(rooms []models.Room) []string {
	seen := make(map[string]bool)
	var types []string
	for _, room := range rooms {
		if room.RoomType == "" || seen[room.RoomType] {
			continue
		}
		seen[room.RoomType] = true
		types = append(types, room.RoomType)
	}
	return types
}

// FloorOptions returns the distinct floor numbers present in the room
// collection, ascending.
func FloorOptions(rooms []models.Room) []int {
	seen := make(map[int]bool)
	var floors []int
	for _, room := range rooms {
		if seen[room.Floor] {
			continue
		}
		seen[room.Floor] = true
		floors = append(floors, room.Floor)
	}
	sort.Ints(floors)
	return floors
}
