package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure beyond its HTTP status code, so callers can tell
// booking rejections apart even when the transport layer collapses them into
// one generic message.
type Kind string

const (
	KindRoomNotFound           Kind = "room_not_found"
	KindTimeConflict           Kind = "time_conflict"
	KindInsufficientCapacity   Kind = "insufficient_capacity"
	KindInvalidTimeFormat      Kind = "invalid_time_format"
	KindPersistenceUnavailable Kind = "persistence_unavailable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// RoomNotFound returns a booking rejection for an unknown room number.
func RoomNotFound(number int) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindRoomNotFound,
		Message: fmt.Sprintf("room %d not found", number),
	}
}

// TimeConflict returns a booking rejection for an overlapping time window.
func TimeConflict(number int) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindTimeConflict,
		Message: fmt.Sprintf("room %d already reserved for the requested time window", number),
	}
}

// InsufficientCapacity returns a booking rejection for a guest count above
// the room's remaining capacity.
func InsufficientCapacity(number, capacity, numGuests int) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInsufficientCapacity,
		Message: fmt.Sprintf("room %d has capacity %d, cannot host %d guests", number, capacity, numGuests),
	}
}

// InvalidTimeFormat returns a failure for a malformed date or time-of-day string.
func InvalidTimeFormat(err error) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidTimeFormat,
		Message: fmt.Sprintf("invalid date/time format: %v", err),
	}
}

// PersistenceUnavailable returns a failure for an unreachable storage medium.
func PersistenceUnavailable(err error) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindPersistenceUnavailable,
		Message: fmt.Sprintf("storage unavailable: %v", err),
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or the empty kind.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return Kind("")
}

// IsBookingRejection reports whether the error is one of the three booking
// rejection kinds that the transport layer folds into a generic message.
func IsBookingRejection(err error) bool {
	switch GetKind(err) {
	case KindRoomNotFound, KindTimeConflict, KindInsufficientCapacity:
		return true
	default:
		return false
	}
}
