package room

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/infras/otel"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model/dto"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/service"
	"github.com/Lynxxxc/RESERVASI/shared/constant"
	"github.com/Lynxxxc/RESERVASI/shared/failure"
	"github.com/Lynxxxc/RESERVASI/shared/validator"
	"github.com/Lynxxxc/RESERVASI/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Delete("/{number}/reservations/{id}", handler.CancelReservation)
	})
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Post("/", handler.CreateReservation)
	})
}

// GetRooms lists every room with its coarse availability label.
// @Summary List rooms
// @Description List every room with its remaining capacity and a coarse availability label (no active reservations).
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.Rooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetReservations lists every active reservation across rooms.
// @Summary List reservations
// @Description List every active reservation in booking order, each with its cancellation ID.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	reservations, err := handler.service.Reservations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservations)
}

// CreateReservation handles a booking request.
// @Summary Book a room
// @Description Book a room for a time window and guest count. Rejections share one generic message.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.BookResult] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		if failure.IsBookingRejection(err) {
			response.WithBookingRejection(writer, err)

			return
		}

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(writer, http.StatusCreated, result)
}

// CancelReservation cancels a reservation by room number and reservation ID.
// The confirmation prompt is the client's concern; reaching this endpoint is
// the affirmative answer.
// @Summary Cancel a reservation
// @Description Cancel a reservation, restoring the room's capacity.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param number path integer true "Room number"
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.CancelResult] "Reservation cancelled"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{number}/reservations/{id} [delete]
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	number, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamRoomNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room number")

		response.WithError(writer, failure.BadRequestFromString("room number must be an integer"))

		return
	}

	id := chi.URLParam(request, constant.RequestParamReservationID)

	result, err := handler.service.Cancel(ctx, number, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
