package validator

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday 12 January 2024, 15:30:45 UTC.
var fixedNow = time.Date(2024, time.January, 12, 15, 30, 45, 0, time.UTC)

func newDateChecker() *DateTimeChecker {
	return NewDateTimeChecker(DateLayout, time.UTC, clock.NewFakeClock(fixedNow))
}

func newTimestampChecker() *DateTimeChecker {
	return NewDateTimeChecker(TimestampLayout, time.UTC, clock.NewFakeClock(fixedNow))
}

func TestDateTimeChecker_IsValidFormat(t *testing.T) {
	dates := newDateChecker()
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2024-1-5", "2023-02-29", "2024-01-12 10:00:00", ""}
	for _, s := range valid {
		if !dates.IsValidFormat(s) {
			t.Errorf("IsValidFormat(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if dates.IsValidFormat(s) {
			t.Errorf("IsValidFormat(%q) = true, want false", s)
		}
	}

	stamps := newTimestampChecker()
	assert.True(t, stamps.IsValidFormat("2024-01-10 09:00:00"))
	assert.False(t, stamps.IsValidFormat("2024-01-10 9:00:00"))
	assert.False(t, stamps.IsValidFormat("2024-01-10 24:00:00"))
	assert.False(t, stamps.IsValidFormat("2024-01-10T09:00:00"))
	assert.False(t, stamps.IsValidFormat("2024-01-10"))
}

func TestDateTimeChecker_ParseAndFormat(t *testing.T) {
	stamps := newTimestampChecker()

	parsed, err := stamps.Parse("2024-01-10 09:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2024-01-10 09:00:00", stamps.Format(parsed))

	_, err = stamps.Parse("yesterday")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateTimeChecker_CheckHireDate(t *testing.T) {
	dates := newDateChecker()

	cases := []struct {
		name string
		date string
		want error
	}{
		{"today is a friday", "2024-01-12", nil},
		{"past monday", "2023-06-05", nil},
		{"past wednesday", "2024-01-10", nil},
		{"saturday", "2024-01-13", ErrWeekendDate},
		{"sunday", "2024-01-07", ErrWeekendDate},
		{"future weekday", "2024-01-15", ErrFutureDate},
		{"invalid format", "12/01/2024", ErrInvalidDateFormat},
		{"impossible date", "2024-02-30", ErrInvalidDateFormat},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := dates.CheckHireDate(c.date)
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestDateTimeChecker_CheckHireDate_TodayLateInTheDay(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2024, time.January, 12, 23, 59, 59, 0, time.UTC))
	dates := NewDateTimeChecker(DateLayout, time.UTC, fake)

	assert.NoError(t, dates.CheckHireDate("2024-01-12"))

	fake.Advance(time.Second)
	assert.ErrorIs(t, dates.CheckHireDate("2024-01-15"), ErrFutureDate)
	// Saturday 13th is now today, still a weekend.
	assert.ErrorIs(t, dates.CheckHireDate("2024-01-13"), ErrWeekendDate)
}

func TestDateTimeChecker_ValidateTimestampWindow(t *testing.T) {
	stamps := newTimestampChecker()

	cases := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{"one hour shift", "2024-01-10 09:00:00", "2024-01-10 10:00:00", nil},
		{"long shift", "2024-01-11 08:00:00", "2024-01-11 17:30:00", nil},
		{"half hour shift", "2024-01-10 09:00:00", "2024-01-10 09:30:00", ErrShiftTooShort},
		{"end before start", "2024-01-10 09:00:00", "2024-01-10 08:00:00", ErrShiftTooShort},
		{"start exactly seven days ago", "2024-01-05 15:30:45", "2024-01-05 16:30:45", nil},
		{"start just over seven days ago", "2024-01-05 15:30:44", "2024-01-05 16:30:44", ErrStartOutsideWindow},
		{"start now", "2024-01-12 15:30:45", "2024-01-12 16:30:45", nil},
		{"start in the future", "2024-01-12 15:30:46", "2024-01-12 16:30:46", ErrStartOutsideWindow},
		{"crosses midnight", "2024-01-10 23:00:00", "2024-01-11 01:00:00", ErrShiftSpansDays},
		{"same day next year", "2024-01-10 09:00:00", "2025-01-10 10:00:00", nil},
		{"bad start", "2024-01-10", "2024-01-10 10:00:00", ErrInvalidDateFormat},
		{"bad end", "2024-01-10 09:00:00", "10:00", ErrInvalidDateFormat},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := stamps.ValidateTimestampWindow(c.start, c.end)
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestDateTimeChecker_ValidateTimestampWindow_TruncatesNow(t *testing.T) {
	fake := clock.NewFakeClock(fixedNow.Add(900 * time.Millisecond))
	stamps := NewDateTimeChecker(TimestampLayout, time.UTC, fake)

	assert.NoError(t, stamps.ValidateTimestampWindow("2024-01-12 15:30:45", "2024-01-12 16:30:45"))
}

func TestDateTimeChecker_UsesConfiguredLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 2024-01-12 23:30 in Jakarta is still the 12th there but the 12th 16:30 UTC.
	fake := clock.NewFakeClock(time.Date(2024, time.January, 12, 16, 30, 0, 0, time.UTC))
	stamps := NewDateTimeChecker(TimestampLayout, jakarta, fake)

	assert.NoError(t, stamps.ValidateTimestampWindow("2024-01-12 22:00:00", "2024-01-12 23:15:00"))
	assert.ErrorIs(t, stamps.ValidateTimestampWindow("2024-01-12 23:45:00", "2024-01-13 00:45:00"), ErrStartOutsideWindow)
}
