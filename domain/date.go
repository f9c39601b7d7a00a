package domain

import (
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, encoded as YYYY-MM-DD.
// The zero Date means "not set" and is encoded as an empty string.
type Date struct {
	t time.Time
}

func DateOf(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime keeps only the calendar date of t, as seen in t's location.
func DateFromTime(t time.Time) Date {
	return DateOf(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
