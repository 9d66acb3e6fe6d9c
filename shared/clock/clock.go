// Package clock models wall-clock times of day and the opening windows built from them.
//
// A TimeOfDay carries no date and no location. It is combined with a calendar day
// through On, which places it in that day's location.
package clock

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	Layout = "15:04"

	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// TimeOfDay is a time of day in minutes since midnight.
type TimeOfDay int

func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*minutesPerHour + minute)
}

// Parse reads an "HH:MM" value.
func Parse(value string) (TimeOfDay, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}

	return New(t.Hour(), t.Minute()), nil
}

// ParseOptional returns nil for an empty value.
func ParseOptional(value string) (*TimeOfDay, error) {
	if value == "" {
		return nil, nil
	}

	t, err := Parse(value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / minutesPerHour
}

func (t TimeOfDay) Minute() int {
	return int(t) % minutesPerHour
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On places t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()

	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// Of extracts the time of day of a timestamp.
func Of(ts time.Time) TimeOfDay {
	return New(ts.Hour(), ts.Minute())
}

// Scan implements sql.Scanner for Postgres TIME columns.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = Of(v)

		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeOfDay, src)
	}
}

func (t *TimeOfDay) scanString(value string) error {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		parsed, err = time.Parse(Layout, value)
	}

	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}

	*t = Of(parsed)

	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t < 0 || t >= minutesPerDay {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidTimeOfDay, int(t))
	}

	return t.String() + ":00", nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeOfDay, err)
	}

	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Format returns "" for nil.
func Format(t *TimeOfDay) string {
	if t == nil {
		return ""
	}

	return t.String()
}

// StartOfDay truncates ts to midnight in its own location.
func StartOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// AddDays moves a calendar day forward, keeping midnight across DST shifts.
func AddDays(day time.Time, days int) time.Time {
	return StartOfDay(day).AddDate(0, 0, days)
}

// StartOfWeek returns the Monday of the week containing day.
func StartOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7

	return AddDays(day, -offset)
}
