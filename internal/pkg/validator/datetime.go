package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/clock"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	// TimecardLookback is how far back a timecard may start.
	TimecardLookback = 7 * 24 * time.Hour
	// MinShiftLength is the shortest accepted timecard.
	MinShiftLength = time.Hour
)

var (
	ErrInvalidDateFormat  = errors.New("value does not match the expected format")
	ErrWeekendDate        = errors.New("date falls on a weekend")
	ErrFutureDate         = errors.New("date is in the future")
	ErrStartOutsideWindow = errors.New("start time must be within the last 7 days and not in the future")
	ErrShiftTooShort      = errors.New("end time must be at least 1 hour after start time")
	ErrShiftSpansDays     = errors.New("start time and end time must be on the same day")
)

// DateTimeChecker validates date or timestamp strings against a single
// layout. Parsing is strict: the input must match the layout exactly.
type DateTimeChecker struct {
	layout string
	loc    *time.Location
	clock  clock.Clock
}

func NewDateTimeChecker(layout string, loc *time.Location, c clock.Clock) *DateTimeChecker {
	if loc == nil {
		loc = time.Local
	}
	if c == nil {
		c = clock.New()
	}
	return &DateTimeChecker{layout: layout, loc: loc, clock: c}
}

func (c *DateTimeChecker) Layout() string {
	return c.layout
}

func (c *DateTimeChecker) Location() *time.Location {
	return c.loc
}

// Parse parses s in the checker's location.
func (c *DateTimeChecker) Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(c.layout, s, c.loc)
	// time.Parse tolerates single digit hours; the round trip rejects them.
	if err != nil || t.Format(c.layout) != s {
		return time.Time{}, fmt.Errorf("%w: %q (want %s)", ErrInvalidDateFormat, s, c.layout)
	}
	return t, nil
}

func (c *DateTimeChecker) IsValidFormat(s string) bool {
	_, err := c.Parse(s)
	return err == nil
}

// Format renders t through the checker's layout and location.
func (c *DateTimeChecker) Format(t time.Time) string {
	return t.In(c.loc).Format(c.layout)
}

// now is the current instant truncated to the layout's precision: a date
// layout yields midnight today, a timestamp layout drops sub-seconds.
func (c *DateTimeChecker) now() time.Time {
	now := c.clock.Now().In(c.loc)
	truncated, err := time.ParseInLocation(c.layout, now.Format(c.layout), c.loc)
	if err != nil {
		return now
	}
	return truncated
}

// CheckHireDate accepts a weekday that is not after today.
func (c *DateTimeChecker) CheckHireDate(date string) error {
	hire, err := c.Parse(date)
	if err != nil {
		return err
	}

	switch hire.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekendDate
	}

	if hire.After(c.now()) {
		return ErrFutureDate
	}

	return nil
}

// ValidateTimestampWindow checks that start lies in [now-7d, now], end is at
// least one hour after start, and both share day of month and month. The
// year is not compared.
func (c *DateTimeChecker) ValidateTimestampWindow(start, end string) error {
	startTime, err := c.Parse(start)
	if err != nil {
		return err
	}
	endTime, err := c.Parse(end)
	if err != nil {
		return err
	}

	now := c.now()
	if startTime.Before(now.Add(-TimecardLookback)) || startTime.After(now) {
		return ErrStartOutsideWindow
	}

	if endTime.Before(startTime.Add(MinShiftLength)) {
		return ErrShiftTooShort
	}

	if startTime.Day() != endTime.Day() || startTime.Month() != endTime.Month() {
		return ErrShiftSpansDays
	}

	return nil
}
