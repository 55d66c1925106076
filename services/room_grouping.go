package services

import (
	"fmt"
	"sort"

	"frontdesk/dto"
	"frontdesk/models"
)

// UnknownGroupLabel is the group rooms with an empty room-type name fall
// into. They are grouped, never dropped.
const UnknownGroupLabel = "Unknown"

// RoomGroup is one labeled partition of the room set.
type RoomGroup struct {
	Label string
	Rooms []models.Room
}

// GroupRooms partitions rooms into labeled groups by the chosen dimension.
// Every input room lands in exactly one group.
//
//	roomType: one group per distinct type name, first-occurrence order
//	floor:    one group per distinct floor, "Floor {n}", ascending
func GroupRooms(rooms []models.Room, groupBy dto.GroupBy) []RoomGroup {
	if groupBy == dto.GroupByFloor {
		return groupByFloor(rooms)
	}
	return groupByRoomType(rooms)
}

func groupByRoomType(rooms []models.Room) []RoomGroup {
	index := make(map[string]int)
	var groups []RoomGroup
	for _, room := range rooms {
		label := room.RoomType
		if label == "" {
			label = UnknownGroupLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, RoomGroup{Label: label})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}
	return groups
}

func groupByFloor(rooms []models.Room) []RoomGroup {
	byFloor := make(map[int][]models.Room)
	var floors []int
	for _, room := range rooms {
		if _, ok := byFloor[room.Floor]; !ok {
			floors = append(floors, room.Floor)
		}
		byFloor[room.Floor] = append(byFloor[room.Floor], room)
	}
	sort.Ints(floors)

	groups := make([]RoomGroup, 0, len(floors))
	for _, floor := range floors {
		groups = append(groups, RoomGroup{
			Label: fmt.Sprintf("Floor %d", floor),
			Rooms: byFloor[floor],
		})
	}
	return groups
}
