package booking

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrInvalidInterval = errors.New("end time must be after start time")
)

// Date is a zone-less calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// TimeOfDay is a minute-resolution wall-clock time on an unspecified date.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Interval is a half-open [start,end) slot within a single day.
type Interval struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// ParseInterval builds an interval from raw H:i strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := NewTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := NewTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

func (i Interval) Start() TimeOfDay {
	return i.start
}

func (i Interval) End() TimeOfDay {
	return i.end
}

func (i Interval) DurationMinutes() int {
	return i.end.Minutes() - i.start.Minutes()
}
