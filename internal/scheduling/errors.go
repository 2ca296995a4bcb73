package scheduling

import "errors"

var (
	ErrEmptyText           = errors.New("text is required")
	ErrTextTooLong         = errors.New("text is too long")
	ErrEmptyDates          = errors.New("at least one date is required")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrInvalidWorkingDays  = errors.New("invalid working days")
	ErrInvalidGranularity  = errors.New("invalid granularity")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
	ErrTimezoneMismatch    = errors.New("timezone differs from the calendar timezone")
)
