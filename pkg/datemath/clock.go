package datemath

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// NewClock returns the Clock for hour:minute. Values must be in range.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid clock %02d:%02d", hour, minute)
	}
	return Clock{minutes: hour*60 + minute}, nil
}

// ParseClock parses "H:MM" or "HH:MM".
func ParseClock(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, fmt.Errorf("invalid clock %q", s)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return NewClock(h, min)
}

// MustParseClock is ParseClock for constants known to be valid.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int { return c.minutes / 60 }
func (c Clock) Minute() int { return c.minutes % 60 }
func (c Clock) Minutes() int { return c.minutes }
func (c Clock) IsMidnight() bool { return c.minutes == 0 }
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }
func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }
