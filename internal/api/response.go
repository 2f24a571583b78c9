package api

import (
	"errors"
	"net/http"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/services"
)

// statusForError maps business errors to HTTP status codes. Anything not
// listed here is an internal error.
func statusForError(err error) int {
	var capErr *services.CapacityError
	if errors.As(err, &capErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, services.ErrFlightNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAircraftNotFound),
		errors.Is(err, services.ErrPaymentNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrWrongOldPassword),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrInvalidPhone),
		errors.Is(err, services.ErrInvalidSeats),
		errors.Is(err, services.ErrInvalidCapacity),
		errors.Is(err, services.ErrUnusableAircraft),
		errors.Is(err, services.ErrFlightHasBookings),
		errors.Is(err, services.ErrAircraftInUse),
		errors.Is(err, services.ErrUserHasReservations),
		errors.Is(err, services.ErrNotAnImage),
		errors.Is(err, services.ErrEmptyFile):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondServiceError writes the business error with its mapped status.
// Internal errors get a generic message so details stay in the logs.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		common.RespondError(w, initTime, nil, "Une erreur interne est survenue.", code)
		return
	}
	common.RespondError(w, initTime, err, "", code)
}
