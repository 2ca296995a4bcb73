package datemath

import "time"

// ISODateFormat is the layout used for every date crossing a package boundary.
const ISODateFormat = "2006-01-02"

// Date is a calendar date without time of day or location.
// The zero value is not a valid date; use IsZero to check.
type Date struct {
	year  int
	month time.Month
	day   int
}

// Clock is a wall-clock time of day, stored as minutes since midnight.
type Clock struct {
	minutes int
}
