package dto

import (
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
)

type CreateReservationRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	RoomNumber int    `json:"roomNumber" validate:"required"`
	Date       string `json:"date"       validate:"required,date"`
	StartTime  string `json:"startTime"  validate:"required,timeofday"`
	Duration   int    `json:"duration"   validate:"required,min=1"`
	NumGuests  int    `json:"numGuests"  validate:"required,min=1"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RoomNumber   int    `json:"roomNumber"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	Duration     int    `json:"duration"`
	NumGuests    int    `json:"numGuests"`
	RoomCapacity int    `json:"roomCapacity"`
}

func (r *ReservationResponse) FromModel(model *model.Reservation) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomNumber = model.RoomNumber
	r.Date = model.Date
	r.StartTime = model.StartTime
	r.Duration = model.Duration
	r.NumGuests = model.NumGuests
	r.RoomCapacity = model.RoomCapacity
}

type RoomResponse struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
	// IsAvailable is the coarse status label: a room with zero active
	// reservations. Deliberately distinct from the per-window availability
	// check used during booking.
	IsAvailable bool `json:"isAvailable"`
}

func (r *RoomResponse) FromModel(model *model.Room) {
	r.Number = model.Number
	r.Capacity = model.Capacity
	r.IsAvailable = len(model.Reservations) == 0
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []*model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

func (r *GetReservationsResponse) FromModels(models []*model.Reservation) {
	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// BookResult is the outcome of a committed booking. Warning carries a
// non-fatal persistence failure; the in-memory commit already happened.
type BookResult struct {
	Reservation ReservationResponse `json:"reservation"`
	Warning     string              `json:"warning,omitempty"`
}

// CancelResult mirrors BookResult for cancellations.
type CancelResult struct {
	Warning string `json:"warning,omitempty"`
}
