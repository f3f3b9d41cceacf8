package service

import (
	"time"

	"italiano/internal/domain"
)

// Clock reports the current calendar day in a fixed location
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock returns a wall clock for loc. A nil loc means time.Local.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today returns the current calendar day
func (c Clock) Today() domain.Day {
	return domain.DayOf(c.Now().In(c.Location))
}
