// Package calendar provides a business-day predicate and date adjustment
// conventions over an explicit holiday set.
package calendar

import "time"

// Calendar is a named holiday set plus the weekend rule (Saturday/Sunday).
type Calendar struct {
	name     string
	holidays map[string]struct{}
}

// New builds a Calendar from a list of holiday dates. Only the
// year-month-day component of each holiday is used.
func New(name string, holidays []time.Time) *Calendar {
	m := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		m[h.Format("2006-01-02")] = struct{}{}
	}
	return &Calendar{name: name, holidays: m}
}

// Name returns the calendar's identifier.
func (c *Calendar) Name() string { return c.name }

func (c *Calendar) isHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay reports whether t is neither a weekend nor a listed holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !c.isHoliday(t)
}

// Adjust applies Modified Following: roll forward to the next business day,
// unless that crosses into the next month, in which case roll backward
// instead.
func (c *Calendar) Adjust(t time.Time) time.Time {
	origMonth := t.Month()
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !c.IsBusinessDay(t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing rolls forward to the next business day with no
// month-boundary preservation.
func (c *Calendar) AdjustFollowing(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances n business days from t (n may be negative).
func (c *Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}

// LastBusinessDayOfMonth returns the last business day of the month
// containing t.
func (c *Calendar) LastBusinessDayOfMonth(t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return c.AddBusinessDays(nextMonth, -1)
}

// IsEndOfMonth reports whether t is the last business day of its month.
func (c *Calendar) IsEndOfMonth(t time.Time) bool {
	return t.Equal(c.LastBusinessDayOfMonth(t))
}
