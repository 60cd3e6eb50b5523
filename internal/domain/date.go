package domain

import (
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. Plans are keyed by
// calendar date, not by instant, so UTC day boundaries are derived from it
// explicitly where needed.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return d.startUTC().Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.startUTC().Before(other.startUTC())
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.startUTC().AddDate(0, 0, n))
}

// StartUTC is midnight UTC of the date.
func (d Date) StartUTC() time.Time {
	return d.startUTC()
}

// EndUTC is the last second of the date in UTC. All-day plan entries span
// StartUTC..EndUTC exactly.
func (d Date) EndUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, 0, time.UTC)
}

// NextUTC is midnight UTC of the following date.
func (d Date) NextUTC() time.Time {
	return d.startUTC().AddDate(0, 0, 1)
}

func (d Date) startUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// At combines the date with a UTC wall-clock time, preserving the clock
// reading while moving the instant onto this date.
func (d Date) At(clock time.Time) time.Time {
	c := clock.UTC()
	return time.Date(d.Year, d.Month, d.Day, c.Hour(), c.Minute(), c.Second(), c.Nanosecond(), time.UTC)
}
