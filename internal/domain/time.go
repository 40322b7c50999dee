package domain

import (
	"bytes"
	"fmt"
	"time"
)

const (
	// TimestampLayout is the resort wall-clock format used on the wire (no zone).
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
)

// LocalTime is a resort wall-clock timestamp. The zone is always UTC internally
// and never serialized.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{Time: t}, nil
}

// MustLocalTime is meant for seed data and tests.
func MustLocalTime(s string) LocalTime {
	t, err := ParseLocalTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// WallClock converts an instant into the resort's wall-clock time.
func WallClock(t time.Time, loc *time.Location) LocalTime {
	if loc != nil {
		t = t.In(loc)
	}
	return NewLocalTime(t)
}

func (t LocalTime) String() string {
	return t.Format(TimestampLayout)
}

// Day returns the calendar day as YYYY-MM-DD.
func (t LocalTime) Day() string {
	return t.Format(DateLayout)
}

func (t LocalTime) Clock() string {
	return t.Format(ClockLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*t = LocalTime{}
		return nil
	}
	parsed, err := time.Parse(TimestampLayout, string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", string(data), err)
	}
	t.Time = parsed
	return nil
}

// DateRange is an inclusive range of calendar days. Empty bounds are open.
type DateRange struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Bounds parses the range. A zero time means the side is unbounded; the upper
// bound is the start of the last day.
func (r DateRange) Bounds() (from, to time.Time, err error) {
	if r.DateFrom != "" {
		if from, err = time.Parse(DateLayout, r.DateFrom); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date_from %q: %w", r.DateFrom, err)
		}
	}
	if r.DateTo != "" {
		if to, err = time.Parse(DateLayout, r.DateTo); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date_to %q: %w", r.DateTo, err)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("date_to %s is before date_from %s", r.DateTo, r.DateFrom)
	}
	return from, to, nil
}

// Contains reports whether the calendar day of t lies inside the range.
func (r DateRange) Contains(t LocalTime) bool {
	from, to, err := r.Bounds()
	if err != nil {
		return false
	}
	return InDayRange(t, from, to)
}

// InDayRange compares calendar days only; zero bounds are open.
func InDayRange(t LocalTime, from, to time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
	if !from.IsZero() && day.Before(from) {
		return false
	}
	if !to.IsZero() && day.After(to) {
		return false
	}
	return true
}
