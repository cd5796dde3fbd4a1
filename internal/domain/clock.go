package domain

import (
	"fmt"
	"strings"
	"time"
)

// CivilClock reports wall-clock time of a fixed civil zone, stored as if it
// were UTC. All persisted timestamps of the service use this convention.
type CivilClock struct {
	loc *time.Location
	now func() time.Time
}

// NewCivilClock loads the named IANA zone.
func NewCivilClock(zone string) (*CivilClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &CivilClock{loc: loc, now: time.Now}, nil
}

// NewFixedClock returns a clock that always reports the given instant.
// The instant is interpreted in UTC.
func NewFixedClock(at time.Time) *CivilClock {
	return &CivilClock{loc: time.UTC, now: func() time.Time { return at }}
}

// Now returns the current civil wall time re-tagged as UTC.
func (c *CivilClock) Now() time.Time {
	w := c.now().In(c.loc)
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), time.UTC)
}

// Retroactive returns the calendar date of day combined with the
// time-of-day of now.
func Retroactive(day, now time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}

// ParseCivilDate parses YYYY-MM-DD or an RFC 3339 timestamp and returns
// midnight of that calendar date in UTC.
func ParseCivilDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// EndOfDay returns 24:00:00 of the day, i.e. the next midnight.
func EndOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
