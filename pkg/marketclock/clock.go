// Package marketclock answers whether the US equities regular session is
// open and how long until it next opens.
package marketclock

import "time"

// Regular session bounds, US Eastern time.
const (
	openHour    = 9
	openMinute  = 30
	closeHour   = 16
	closeMinute = 0
)

var eastern = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("marketclock: load America/New_York: " + err.Error())
	}
	return loc
}

// IsOpen reports whether t falls inside the regular trading session
// (09:30–16:00 Eastern). Holidays and weekends are not modeled; callers that
// need exchange calendars handle those upstream.
func IsOpen(t time.Time) bool {
	et := t.In(eastern)
	minutes := et.Hour()*60 + et.Minute()
	return minutes >= openHour*60+openMinute && minutes <= closeHour*60+closeMinute
}

// UntilOpen returns the duration until the next session open (09:30 Eastern).
// Past the close it rolls to the next calendar day; during the session it
// returns zero.
func UntilOpen(t time.Time) time.Duration {
	et := t.In(eastern)
	if IsOpen(et) {
		return 0
	}

	next := time.Date(et.Year(), et.Month(), et.Day(), openHour, openMinute, 0, 0, eastern)
	if !et.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(et)
}
