package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model/dto"
)

func TestReservationResponse_FromModel(t *testing.T) {
	reservation := model.NewReservation("Alice", 101, "2025-03-10", "09:00", 2, 3, 10)

	var response dto.ReservationResponse
	response.FromModel(reservation)

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, reservation.Name, response.Name)
	assert.Equal(t, reservation.RoomNumber, response.RoomNumber)
	assert.Equal(t, reservation.Date, response.Date)
	assert.Equal(t, reservation.StartTime, response.StartTime)
	assert.Equal(t, reservation.Duration, response.Duration)
	assert.Equal(t, reservation.NumGuests, response.NumGuests)
	assert.Equal(t, reservation.RoomCapacity, response.RoomCapacity)
}

func TestRoomResponse_FromModel(t *testing.T) {
	room := model.NewRoom(101, 10)

	var response dto.RoomResponse
	response.FromModel(room)

	assert.Equal(t, 101, response.Number)
	assert.Equal(t, 10, response.Capacity)
	assert.True(t, response.IsAvailable, "expected a room without reservations to read available")

	room.AddReservation(model.NewReservation("Alice", 101, "2025-03-10", "09:00", 2, 3, 10))
	room.Capacity -= 3

	response.FromModel(room)
	assert.Equal(t, 7, response.Capacity)
	assert.False(t, response.IsAvailable, "expected a room with any reservation to read unavailable")
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []*model.Room{
		model.NewRoom(101, 10),
		model.NewRoom(102, 5),
	}
	rooms[1].AddReservation(model.NewReservation("Bob", 102, "2025-03-10", "09:00", 1, 2, 5))

	var response dto.GetRoomsResponse
	response.FromModels(rooms)

	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, 101, response.Rooms[0].Number)
	assert.True(t, response.Rooms[0].IsAvailable)
	assert.Equal(t, 102, response.Rooms[1].Number)
	assert.False(t, response.Rooms[1].IsAvailable)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	reservations := []*model.Reservation{
		model.NewReservation("Alice", 101, "2025-03-10", "09:00", 2, 3, 10),
		model.NewReservation("Bob", 102, "2025-03-11", "14:00", 1, 2, 5),
	}

	var response dto.GetReservationsResponse
	response.FromModels(reservations)

	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, "Alice", response.Reservations[0].Name)
	assert.Equal(t, "Bob", response.Reservations[1].Name)
}
