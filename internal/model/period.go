package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the calendar month containing t.
func MonthPeriod(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}
}

// ParsePeriod builds a period from two YYYY-MM-DD strings.
func ParsePeriod(start, end string) (Period, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Period{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Period{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Period{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return Period{Start: s, End: e}, nil
}

func (p Period) StartString() string { return p.Start.Format(DateLayout) }
func (p Period) EndString() string   { return p.End.Format(DateLayout) }

// Contains reports whether the calendar day of date falls inside the period.
// date may be a bare YYYY-MM-DD or a full RFC 3339 timestamp; only its day
// part is compared.
func (p Period) Contains(date string) (bool, error) {
	if len(date) < len(DateLayout) {
		return false, fmt.Errorf("invalid date %q", date)
	}
	day, err := time.Parse(DateLayout, date[:len(DateLayout)])
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return !day.Before(truncateDay(p.Start)) && !day.After(truncateDay(p.End)), nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Period) String() string {
	return fmt.Sprintf("%s to %s", p.StartString(), p.EndString())
}
