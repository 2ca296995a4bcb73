package http

import (
	"errors"
	"net/http"

	"temporal-intent-engine/internal/scheduling"
	pkgErrors "temporal-intent-engine/pkg/errors"
)

var (
	errInvalidCurrentDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "current_date must be RFC3339 or YYYY-MM-DD")
	errSlotsWithoutDate   = pkgErrors.NewHTTPError(http.StatusBadRequest, "time_slots_by_date has a date missing from dates")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The wrapped message is kept so clients see which value was rejected.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrEmptyText),
		errors.Is(err, scheduling.ErrEmptyDates),
		errors.Is(err, scheduling.ErrInvalidDate),
		errors.Is(err, scheduling.ErrInvalidTimezone),
		errors.Is(err, scheduling.ErrInvalidWorkingHours),
		errors.Is(err, scheduling.ErrInvalidWorkingDays),
		errors.Is(err, scheduling.ErrInvalidGranularity),
		errors.Is(err, scheduling.ErrInvalidTimeSlot),
		errors.Is(err, scheduling.ErrTimezoneMismatch):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, scheduling.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
