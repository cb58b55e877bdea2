package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lynxxxc/RESERVASI/shared/timezone"
)

const (
	EntityName = "room"
)

// Reservation is an immutable record of an approved booking. Two
// reservations can carry identical field values and still represent distinct
// bookings, so cancellation keys off the generated ID, never structural
// equality. The ID is session-scoped and excluded from the stored schema.
type Reservation struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	RoomNumber int    `json:"roomNumber"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	Duration   int    `json:"duration"`
	NumGuests  int    `json:"numGuests"`
	// RoomCapacity snapshots the room's remaining capacity before this
	// reservation was subtracted. Informational only, never recomputed.
	RoomCapacity int       `json:"roomCapacity"`
	CreatedAt    time.Time `json:"-"`
}

func NewReservation(name string, roomNumber int, date, startTime string, duration, numGuests, roomCapacity int) *Reservation {
	return &Reservation{
		ID:           uuid.NewString(),
		Name:         name,
		RoomNumber:   roomNumber,
		Date:         date,
		StartTime:    startTime,
		Duration:     duration,
		NumGuests:    numGuests,
		RoomCapacity: roomCapacity,
		CreatedAt:    timezone.Now(),
	}
}

// Interval returns the reservation's half-open time window.
func (r *Reservation) Interval() (Interval, error) {
	return ToInterval(r.Date, r.StartTime, r.Duration)
}

// Room owns its remaining capacity and the ordered list of its active
// reservations. Capacity is mutated only by the booking and cancellation
// workflows; at any time capacity plus the guests of all active reservations
// equals the room's original total capacity.
type Room struct {
	Number       int            `json:"number"`
	Capacity     int            `json:"capacity"`
	Reservations []*Reservation `json:"reservations"`
}

func NewRoom(number, capacity int) *Room {
	return &Room{
		Number:       number,
		Capacity:     capacity,
		Reservations: []*Reservation{},
	}
}

// IsAvailable reports whether the candidate window overlaps no existing
// reservation. Read-only; the linear scan is fine at per-room reservation
// counts.
func (r *Room) IsAvailable(startTime string, duration int, date string) (bool, error) {
	candidate, err := ToInterval(date, startTime, duration)
	if err != nil {
		return false, err
	}

	for _, reservation := range r.Reservations {
		existing, err := reservation.Interval()
		if err != nil {
			return false, err
		}

		if candidate.Overlaps(existing) {
			return false, nil
		}
	}

	return true, nil
}

// AddReservation appends to the ordered reservation list. It does not touch
// capacity; the booking workflow adjusts capacity together with the append.
func (r *Room) AddReservation(reservation *Reservation) {
	r.Reservations = append(r.Reservations, reservation)
}

// CancelReservation restores the reservation's guests to capacity and
// removes it from the list by ID. Returns the removed reservation, or nil
// when the ID is not present in this room's list (silent no-op).
func (r *Room) CancelReservation(id string) *Reservation {
	for i, reservation := range r.Reservations {
		if reservation.ID == id {
			r.Capacity += reservation.NumGuests
			r.Reservations = append(r.Reservations[:i], r.Reservations[i+1:]...)

			return reservation
		}
	}

	return nil
}
