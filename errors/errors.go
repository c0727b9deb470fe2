package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Validation: rejected before any shared state is touched.
	ErrTopicNotFound = fmt.Errorf("topic not found")
	ErrTopicInactive = fmt.Errorf("topic is not active")
	ErrBadPayload    = fmt.Errorf("malformed payload")

	// Conflict: rejected before any pool mutation.
	ErrAlreadyWaiting   = fmt.Errorf("already waiting for this topic")
	ErrAlreadyInSession = fmt.Errorf("already in an active session")

	// Session lifecycle.
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrSessionEnded    = fmt.Errorf("session already ended")
	ErrSamePeer        = fmt.Errorf("session participants must be distinct")

	// Relay boundary.
	ErrNotParticipant = fmt.Errorf("not a participant of this session")
	ErrRoomNotFound   = fmt.Errorf("room not found")

	ErrInvalidToken = fmt.Errorf("invalid or expired token")
)

// MapToHTTPError converts a domain error into an echo.HTTPError so the REST
// layer never leaks raw internal errors to clients. Unknown errors become a
// generic 500 with the original message swallowed.
func MapToHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrTopicNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrTopicInactive),
		errors.Is(err, ErrBadPayload),
		errors.Is(err, ErrSamePeer):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAlreadyWaiting),
		errors.Is(err, ErrAlreadyInSession),
		errors.Is(err, ErrSessionEnded):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotParticipant):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
