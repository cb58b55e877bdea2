package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/infras/kafka"
	"github.com/Lynxxxc/RESERVASI/infras/otel"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model/dto"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/repository"
	"github.com/Lynxxxc/RESERVASI/shared/constant"
	"github.com/Lynxxxc/RESERVASI/shared/failure"
)

type Room interface {
	Book(ctx context.Context, req dto.CreateReservationRequest) (dto.BookResult, error)
	Cancel(ctx context.Context, roomNumber int, reservationID string) (dto.CancelResult, error)
	Rooms(ctx context.Context) (dto.GetRoomsResponse, error)
	Reservations(ctx context.Context) (dto.GetReservationsResponse, error)
}

// serviceImpl owns every workflow that touches the registry. The mutex
// serializes them, so a booking never observes a half-applied cancellation
// and vice versa.
type serviceImpl struct {
	mu       sync.Mutex
	registry *repository.Registry
	store    repository.SnapshotStore
	events   kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(registry *repository.Registry, store repository.SnapshotStore, events kafka.Client, cfg *config.Config, otel otel.Otel) Room {
	s := &serviceImpl{
		registry: registry,
		store:    store,
		events:   events,
		cfg:      cfg,
		otel:     otel,
	}

	if err := s.hydrate(context.Background()); err != nil {
		log.Warn().Err(err).Msg("could not hydrate registry from storage, continuing with seeded defaults")
	}

	return s
}

// hydrate loads the stored snapshot once at startup. A missing snapshot
// keeps the seeded defaults; an unreachable store is non-fatal.
func (s *serviceImpl) hydrate(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hydrate")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, found, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if !found {
		log.Info().Msg("no stored registry snapshot, using seeded defaults")

		return nil
	}

	s.registry.Restore(records)

	log.Info().Int("rooms", len(records)).Msg("registry hydrated from stored snapshot")

	return nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.CreateReservationRequest) (res dto.BookResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.registry.Lookup(req.RoomNumber)
	if !ok {
		log.Error().Int("room", req.RoomNumber).Msg("booking rejected, unknown room")

		return res, failure.RoomNotFound(req.RoomNumber) // nolint:wrapcheck
	}

	available, err := room.IsAvailable(req.StartTime, req.Duration, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute reservation interval")

		return res, err
	}

	if !available {
		log.Error().Int("room", room.Number).Str("date", req.Date).Str("startTime", req.StartTime).Msg("booking rejected, time conflict")

		return res, failure.TimeConflict(room.Number) // nolint:wrapcheck
	}

	if room.Capacity < req.NumGuests {
		log.Error().Int("room", room.Number).Int("capacity", room.Capacity).Int("numGuests", req.NumGuests).Msg("booking rejected, insufficient capacity")

		return res, failure.InsufficientCapacity(room.Number, room.Capacity, req.NumGuests) // nolint:wrapcheck
	}

	// Commit. The reservation snapshots the capacity before its own guests
	// are subtracted. Append and decrement are both in-process synchronous
	// mutations under the lock, forming one logical transaction.
	reservation := model.NewReservation(req.Name, req.RoomNumber, req.Date, req.StartTime, req.Duration, req.NumGuests, room.Capacity)
	room.AddReservation(reservation)
	room.Capacity -= req.NumGuests

	scope.AddEvent("Reservation committed for room " + strconv.Itoa(room.Number))

	s.publish(ctx, eventReserved, reservation)

	res.Reservation.FromModel(reservation)

	// A failed snapshot write does not roll back the commit; the in-memory
	// registry stays authoritative for the session.
	if err := s.store.Save(ctx, s.registry.Rooms()); err != nil {
		log.Warn().Err(err).Msg("reservation committed but snapshot write failed")

		res.Warning = err.Error()
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, roomNumber int, reservationID string) (res dto.CancelResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.registry.Lookup(roomNumber)
	if !ok {
		// Should not happen while reservations always reference seeded
		// rooms; nothing to cancel.
		log.Warn().Int("room", roomNumber).Msg("cancellation for unknown room ignored")

		return res, nil
	}

	reservation := room.CancelReservation(reservationID)
	if reservation == nil {
		log.Warn().Int("room", roomNumber).Str("reservation", reservationID).Msg("cancellation for unknown reservation ignored")

		return res, nil
	}

	scope.AddEvent("Reservation cancelled for room " + strconv.Itoa(roomNumber))

	s.publish(ctx, eventCancelled, reservation)

	if err := s.store.Save(ctx, s.registry.Rooms()); err != nil {
		log.Warn().Err(err).Msg("reservation cancelled but snapshot write failed")

		res.Warning = err.Error()
	}

	return res, nil
}

func (s *serviceImpl) Rooms(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	res.FromModels(s.registry.Rooms())

	return res, nil
}

func (s *serviceImpl) Reservations(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservations")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	res.FromModels(s.registry.Reservations())

	return res, nil
}
