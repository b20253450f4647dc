package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Storage encodings. Dates carry no time component; timestamps are
// local-naive and second-precise. Both are stored as TEXT.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps priorities to comparable weights, High highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Status is the completion state of a task.
type Status string

const (
	StatusTodo Status = "Todo"
	StatusDone Status = "Done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusDone
}

// Date is a calendar date without a time-of-day component,
// persisted as "YYYY-MM-DD".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// GormDataType keeps dates as TEXT columns.
func (Date) GormDataType() string { return "text" }

// Timestamp is a second-precision local wall-clock time, persisted as
// "YYYY-MM-DDTHH:MM:SS". The source history drifted between this form and a
// trailing-Z variant that never actually converted to UTC; the naive form is
// the one kept.
type Timestamp time.Time

// Now returns the current local time rounded down to the second.
func Now() Timestamp {
	return Timestamp(time.Now().Truncate(time.Second))
}

// ParseTimestamp parses "YYYY-MM-DDTHH:MM:SS".
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp(t), nil
}

func (ts Timestamp) String() string {
	return time.Time(ts).Format(timestampLayout)
}

func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

func (ts Timestamp) IsZero() bool {
	return time.Time(ts).IsZero()
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	return ts.String(), nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	case time.Time:
		*ts = Timestamp(v.Truncate(time.Second))
		return nil
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
}

// GormDataType keeps timestamps as TEXT columns.
func (Timestamp) GormDataType() string { return "text" }
