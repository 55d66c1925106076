package services

import (
	"testing"

	"frontdesk/dto"
	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRoomsByRoomType(t *testing.T) {
	groups := GroupRooms(testRooms(), dto.GroupByRoomType)

	require.Len(t, groups, 3)
	assert.Equal(t, "Standard", groups[0].Label, "first-occurrence order")
	assert.Equal(t, "Deluxe", groups[1].Label)
	assert.Equal(t, "Suite", groups[2].Label)

	assert.Len(t, groups[0].Rooms, 2)
	assert.Len(t, groups[1].Rooms, 2)
	assert.Len(t, groups[2].Rooms, 1)
}

func TestGroupRoomsByFloor(t *testing.T) {
	// Input deliberately out of floor order.
	rooms := []models.Room{
		{ID: 1, RoomNumber: "301", Floor: 3},
		{ID: 2, RoomNumber: "101", Floor: 1},
		{ID: 3, RoomNumber: "302", Floor: 3},
		{ID: 4, RoomNumber: "201", Floor: 2},
	}

	groups := GroupRooms(rooms, dto.GroupByFloor)

	require.Len(t, groups, 3)
	assert.Equal(t, "Floor 1", groups[0].Label)
	assert.Equal(t, "Floor 2", groups[1].Label)
	assert.Equal(t, "Floor 3", groups[2].Label)
	assert.Len(t, groups[2].Rooms, 2)
}

func TestGroupRoomsIsExhaustiveDisjointPartition(t *testing.T) {
	rooms := testRooms()

	for _, groupBy := range []dto.GroupBy{dto.GroupByRoomType, dto.GroupByFloor} {
		groups := GroupRooms(rooms, groupBy)

		seen := make(map[uint]int)
		for _, g := range groups {
			for _, r := range g.Rooms {
				seen[r.ID]++
			}
		}

		require.Len(t, seen, len(rooms), "every room appears")
		for id, count := range seen {
			assert.Equal(t, 1, count, "room %d appears exactly once", id)
		}
	}
}

func TestGroupRoomsMissingRoomType(t *testing.T) {
	// A room without a type name must not be silently dropped.
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", RoomType: "Standard"},
		{ID: 2, RoomNumber: "102", RoomType: ""},
		{ID: 3, RoomNumber: "103", RoomType: "Standard"},
	}

	groups := GroupRooms(rooms, dto.GroupByRoomType)

	require.Len(t, groups, 2)
	assert.Equal(t, "Standard", groups[0].Label)
	assert.Equal(t, UnknownGroupLabel, groups[1].Label)
	require.Len(t, groups[1].Rooms, 1)
	assert.Equal(t, uint(2), groups[1].Rooms[0].ID)
}

func TestGroupRoomsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupRooms(nil, dto.GroupByRoomType))
	assert.Empty(t, GroupRooms(nil, dto.GroupByFloor))
}
