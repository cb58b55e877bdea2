package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/repository"
)

func TestNewRegistry_Defaults(t *testing.T) {
	registry := repository.NewRegistry(&config.Config{})

	rooms := registry.Rooms()
	assert.Len(t, rooms, 5)

	wantNumbers := []int{101, 102, 103, 104, 105}
	wantCapacities := []int{10, 5, 3, 7, 9}

	for i, room := range rooms {
		assert.Equal(t, wantNumbers[i], room.Number)
		assert.Equal(t, wantCapacities[i], room.Capacity)
		assert.Empty(t, room.Reservations)
	}
}

func TestNewRegistry_ConfiguredSeed(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantNumbers    []int
		wantCapacities []int
	}{
		{
			name:           "valid seed",
			raw:            "201:4,202:8",
			wantNumbers:    []int{201, 202},
			wantCapacities: []int{4, 8},
		},
		{
			name:           "seed with spaces",
			raw:            " 201:4 , 202:8 ",
			wantNumbers:    []int{201, 202},
			wantCapacities: []int{4, 8},
		},
		{
			name:           "duplicate numbers keep the first",
			raw:            "201:4,201:8",
			wantNumbers:    []int{201},
			wantCapacities: []int{4},
		},
		{
			name:           "malformed pair falls back to defaults",
			raw:            "201:four",
			wantNumbers:    []int{101, 102, 103, 104, 105},
			wantCapacities: []int{10, 5, 3, 7, 9},
		},
		{
			name:           "missing separator falls back to defaults",
			raw:            "2014",
			wantNumbers:    []int{101, 102, 103, 104, 105},
			wantCapacities: []int{10, 5, 3, 7, 9},
		},
		{
			name:           "negative capacity falls back to defaults",
			raw:            "201:-1",
			wantNumbers:    []int{101, 102, 103, 104, 105},
			wantCapacities: []int{10, 5, 3, 7, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Rooms = tt.raw

			registry := repository.NewRegistry(cfg)

			rooms := registry.Rooms()
			assert.Len(t, rooms, len(tt.wantNumbers))

			for i, room := range rooms {
				assert.Equal(t, tt.wantNumbers[i], room.Number)
				assert.Equal(t, tt.wantCapacities[i], room.Capacity)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := repository.NewRegistry(&config.Config{})

	room, ok := registry.Lookup(103)
	assert.True(t, ok)
	assert.Equal(t, 103, room.Number)
	assert.Equal(t, 3, room.Capacity)

	_, ok = registry.Lookup(999)
	assert.False(t, ok)
}

func TestRegistry_Reservations(t *testing.T) {
	registry := repository.NewRegistry(&config.Config{})

	room102, _ := registry.Lookup(102)
	room102.AddReservation(model.NewReservation("Bob", 102, "2025-03-10", "14:00", 1, 2, 5))

	room101, _ := registry.Lookup(101)
	room101.AddReservation(model.NewReservation("Alice", 101, "2025-03-10", "09:00", 2, 3, 10))
	room101.AddReservation(model.NewReservation("Carol", 101, "2025-03-10", "13:00", 1, 1, 7))

	reservations := registry.Reservations()
	assert.Len(t, reservations, 3)

	// Room seed order first, booking order within a room.
	assert.Equal(t, "Alice", reservations[0].Name)
	assert.Equal(t, "Carol", reservations[1].Name)
	assert.Equal(t, "Bob", reservations[2].Name)
}

func TestRegistry_Restore(t *testing.T) {
	registry := repository.NewRegistry(&config.Config{})

	records := []model.Room{
		{
			Number:   101,
			Capacity: 7,
			Reservations: []*model.Reservation{
				{
					Name:         "Alice",
					RoomNumber:   101,
					Date:         "2025-03-10",
					StartTime:    "09:00",
					Duration:     2,
					NumGuests:    3,
					RoomCapacity: 10,
				},
			},
		},
		{
			Number:       999,
			Capacity:     4,
			Reservations: []*model.Reservation{},
		},
	}

	registry.Restore(records)

	room, ok := registry.Lookup(101)
	assert.True(t, ok)
	assert.Equal(t, 7, room.Capacity)
	assert.Len(t, room.Reservations, 1)

	restored := room.Reservations[0]
	assert.Equal(t, "Alice", restored.Name)
	assert.Equal(t, 10, restored.RoomCapacity)
	assert.NotEmpty(t, restored.ID, "expected a fresh ID for the rehydrated reservation")

	// Records for unknown rooms are dropped, seeded rooms stay untouched.
	_, ok = registry.Lookup(999)
	assert.False(t, ok)

	room102, _ := registry.Lookup(102)
	assert.Equal(t, 5, room102.Capacity)
	assert.Empty(t, room102.Reservations)
}
