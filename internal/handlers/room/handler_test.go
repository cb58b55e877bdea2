package room_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Lynxxxc/RESERVASI/infras/otel/mocks"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model/dto"
	serviceMocks "github.com/Lynxxxc/RESERVASI/internal/domains/room/service/mocks"
	roomHandler "github.com/Lynxxxc/RESERVASI/internal/handlers/room"
	"github.com/Lynxxxc/RESERVASI/shared/constant"
	"github.com/Lynxxxc/RESERVASI/shared/failure"
)

func setupRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockRoom) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockRoom(ctrl)

	handler := roomHandler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestHandler_CreateReservation(t *testing.T) {
	validBody := `{"name":"Alice","roomNumber":101,"date":"2025-03-10","startTime":"09:00","duration":2,"numGuests":3}`

	tests := []struct {
		name        string
		body        string
		setupMock   func(mockService *serviceMocks.MockRoom)
		wantCode    int
		wantGeneric bool
	}{
		{
			name: "successful booking",
			body: validBody,
			setupMock: func(mockService *serviceMocks.MockRoom) {
				result := dto.BookResult{}
				result.Reservation = dto.ReservationResponse{ID: "test-id", Name: "Alice", RoomNumber: 101}

				mockService.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(result, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid body never reaches the service",
			body:      `{"name":"Alice","roomNumber":101,"date":"tomorrow","startTime":"09:00","duration":2,"numGuests":3}`,
			setupMock: func(*serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room folds to the generic message",
			body: validBody,
			setupMock: func(mockService *serviceMocks.MockRoom) {
				mockService.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookResult{}, failure.RoomNotFound(101))
			},
			wantCode:    http.StatusNotFound,
			wantGeneric: true,
		},
		{
			name: "time conflict folds to the generic message",
			body: validBody,
			setupMock: func(mockService *serviceMocks.MockRoom) {
				mockService.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookResult{}, failure.TimeConflict(101))
			},
			wantCode:    http.StatusConflict,
			wantGeneric: true,
		},
		{
			name: "insufficient capacity folds to the generic message",
			body: validBody,
			setupMock: func(mockService *serviceMocks.MockRoom) {
				mockService.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookResult{}, failure.InsufficientCapacity(101, 2, 3))
			},
			wantCode:    http.StatusConflict,
			wantGeneric: true,
		},
		{
			name: "invalid time format keeps its own message",
			body: validBody,
			setupMock: func(mockService *serviceMocks.MockRoom) {
				mockService.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(dto.BookResult{}, failure.InvalidTimeFormat(errors.New("parsing time")))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantGeneric {
				var payload struct {
					Error string `json:"error"`
				}
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
				assert.Equal(t, constant.ResponseErrorBookingRejected, payload.Error)
			}
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(mockService *serviceMocks.MockRoom)
		wantCode  int
	}{
		{
			name:   "successful cancellation",
			target: "/rooms/101/reservations/test-id",
			setupMock: func(mockService *serviceMocks.MockRoom) {
				mockService.EXPECT().
					Cancel(gomock.Any(), 101, "test-id").
					Return(dto.CancelResult{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "non-numeric room number",
			target:    "/rooms/lobby/reservations/test-id",
			setupMock: func(*serviceMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := setupRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetRooms(t *testing.T) {
	router, mockService := setupRouter(t)

	rooms := dto.GetRoomsResponse{
		Rooms: []dto.RoomResponse{
			{Number: 101, Capacity: 10, IsAvailable: true},
			{Number: 102, Capacity: 3, IsAvailable: false},
		},
	}

	mockService.EXPECT().
		Rooms(gomock.Any()).
		Return(rooms, nil)

	request := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"isAvailable":true`)
	assert.Contains(t, recorder.Body.String(), `"isAvailable":false`)
}

func TestHandler_GetReservations(t *testing.T) {
	router, mockService := setupRouter(t)

	reservations := dto.GetReservationsResponse{
		Reservations: []dto.ReservationResponse{
			{ID: "test-id", Name: "Alice", RoomNumber: 101},
		},
	}

	mockService.EXPECT().
		Reservations(gomock.Any()).
		Return(reservations, nil)

	request := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":"test-id"`)
}
