package repository

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
)

type roomSeed struct {
	number   int
	capacity int
}

func defaultSeed() []roomSeed {
	return []roomSeed{
		{number: 101, capacity: 10},
		{number: 102, capacity: 5},
		{number: 103, capacity: 3},
		{number: 104, capacity: 7},
		{number: 105, capacity: 9},
	}
}

// parseSeed reads comma-separated "number:capacity" pairs.
func parseSeed(raw string) ([]roomSeed, bool) {
	seeds := []roomSeed{}

	for pair := range strings.SplitSeq(raw, ",") {
		number, capacity, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return nil, false
		}

		num, err := strconv.Atoi(number)
		if err != nil {
			return nil, false
		}

		capSize, err := strconv.Atoi(capacity)
		if err != nil || capSize < 0 {
			return nil, false
		}

		seeds = append(seeds, roomSeed{number: num, capacity: capSize})
	}

	return seeds, len(seeds) > 0
}

// Registry is the fixed set of rooms the service manages, indexed by room
// number. It is seeded once at startup and never resized at runtime. The
// registry itself is not synchronized; the booking service serializes every
// workflow that touches it.
type Registry struct {
	numbers []int
	rooms   map[int]*model.Room
}

func NewRegistry(cfg *config.Config) *Registry {
	seeds := defaultSeed()

	if cfg.App.Rooms != "" {
		parsed, ok := parseSeed(cfg.App.Rooms)
		if ok {
			seeds = parsed
		} else {
			log.Warn().Str("rooms", cfg.App.Rooms).Msg("Invalid room seed configuration, using built-in defaults")
		}
	}

	registry := &Registry{
		numbers: make([]int, 0, len(seeds)),
		rooms:   make(map[int]*model.Room, len(seeds)),
	}

	for _, seed := range seeds {
		if _, exists := registry.rooms[seed.number]; exists {
			log.Warn().Int("number", seed.number).Msg("Duplicate room number in seed, keeping the first")

			continue
		}

		registry.numbers = append(registry.numbers, seed.number)
		registry.rooms[seed.number] = model.NewRoom(seed.number, seed.capacity)
	}

	log.Info().Int("rooms", len(registry.numbers)).Msg("Room registry initialized")

	return registry
}

// Lookup returns the room with the given number.
func (reg *Registry) Lookup(number int) (*model.Room, bool) {
	room, ok := reg.rooms[number]

	return room, ok
}

// Rooms returns every room in seed order.
func (reg *Registry) Rooms() []*model.Room {
	rooms := make([]*model.Room, 0, len(reg.numbers))
	for _, number := range reg.numbers {
		rooms = append(rooms, reg.rooms[number])
	}

	return rooms
}

// Reservations returns all active reservations across rooms, in room seed
// order and booking order within a room.
func (reg *Registry) Reservations() []*model.Reservation {
	reservations := []*model.Reservation{}
	for _, number := range reg.numbers {
		reservations = append(reservations, reg.rooms[number].Reservations...)
	}

	return reservations
}

// Restore overwrites the registry from stored room records. Each record is
// matched to its seeded room by number; records for unknown numbers are
// dropped. Stored reservations are rehydrated into proper Reservation values
// with fresh IDs, so identity-based cancellation keeps working after a
// reload.
func (reg *Registry) Restore(records []model.Room) {
	for _, record := range records {
		room, ok := reg.rooms[record.Number]
		if !ok {
			log.Warn().Int("number", record.Number).Msg("Stored snapshot references unknown room, skipping")

			continue
		}

		room.Capacity = record.Capacity
		room.Reservations = make([]*model.Reservation, 0, len(record.Reservations))

		for _, stored := range record.Reservations {
			room.AddReservation(model.NewReservation(
				stored.Name,
				stored.RoomNumber,
				stored.Date,
				stored.StartTime,
				stored.Duration,
				stored.NumGuests,
				stored.RoomCapacity,
			))
		}
	}
}
