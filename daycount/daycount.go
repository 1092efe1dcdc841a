// Package daycount computes year fractions between dates under a handful of
// standard day-count conventions.
package daycount

import "time"

// Convention names a day-count rule.
type Convention string

const (
	// Act360 divides actual days by 360.
	Act360 Convention = "ACT/360"
	// Act365F divides actual days by a fixed 365.
	Act365F Convention = "ACT/365F"
	// Thirty360 uses the 30/360 bond-basis convention.
	Thirty360 Convention = "30/360"
)

// YearFraction computes the year fraction between start and end under c.
// Unrecognized conventions fall back to ACT/365F, matching the teacher's own
// default.
func (c Convention) YearFraction(start, end time.Time) float64 {
	switch c {
	case Act360:
		return actualDays(start, end) / 360.0
	case Thirty360:
		return thirty360(start, end)
	case Act365F:
		return actualDays(start, end) / 365.0
	default:
		return actualDays(start, end) / 365.0
	}
}

func actualDays(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

func thirty360(start, end time.Time) float64 {
	d1 := start.Day()
	d2 := end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := d2 - d1
	return float64(years*360+months*30+days) / 360.0
}
