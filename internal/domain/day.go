package domain

import "time"

// Day is a calendar date with no time-of-day component
type Day struct {
	Date time.Time
}

// DayOf returns the calendar day of t in t's location
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// IsZero reports whether the day was never set
func (d Day) IsZero() bool {
	return d.Date.IsZero()
}

// Equal reports whether both values denote the same calendar day
func (d Day) Equal(other Day) bool {
	return d.Date.Equal(other.Date)
}

// AddDays returns the day n days after d
func (d Day) AddDays(n int) Day {
	return Day{Date: d.Date.AddDate(0, 0, n)}
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns the date spelled out in Italian, e.g. "14 ottobre 2026"
func (d Day) DisplayString() string {
	months := []string{
		"", "gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	}

	return d.Date.Format("2 ") + months[d.Date.Month()] + d.Date.Format(" 2006")
}
