package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/infras/kafka"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
)

const (
	eventReserved  = "reserved"
	eventCancelled = "cancelled"
)

// ReservationEvent is the payload published for every committed booking and
// cancellation.
type ReservationEvent struct {
	Event         string `json:"event"`
	ReservationID string `json:"reservationId"`
	Name          string `json:"name"`
	RoomNumber    int    `json:"roomNumber"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Duration      int    `json:"duration"`
	NumGuests     int    `json:"numGuests"`
	RoomCapacity  int    `json:"roomCapacity"`
}

// publish emits a reservation event when the event stream is enabled.
// Failures are logged only; event delivery never blocks or fails a workflow.
func (s *serviceImpl) publish(ctx context.Context, event string, reservation *model.Reservation) {
	if !s.cfg.Events.Enable {
		return
	}

	payload := ReservationEvent{
		Event:         event,
		ReservationID: reservation.ID,
		Name:          reservation.Name,
		RoomNumber:    reservation.RoomNumber,
		Date:          reservation.Date,
		StartTime:     reservation.StartTime,
		Duration:      reservation.Duration,
		NumGuests:     reservation.NumGuests,
		RoomCapacity:  reservation.RoomCapacity,
	}

	message := kafka.Message{
		Key:   reservation.ID,
		Value: payload,
	}

	if err := s.events.SendMessages(ctx, s.cfg.Events.Topic, message); err != nil {
		log.Error().Err(err).Str("event", event).Str("reservation", reservation.ID).Msg("failed to publish reservation event")
	}
}
