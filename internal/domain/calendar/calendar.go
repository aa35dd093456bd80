// Package calendar resolves a date to its holiday, discount and season
// attributes. Every component of a run consults the same Resolver so holiday
// and discount semantics never disagree.
package calendar

import (
	"time"
)

// NormalDay is the holiday name of a date that is not in the holiday table.
const NormalDay = "Normal Day"

// Season is a meteorological season.
type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
)

// Seasons lists every season in calendar order.
var Seasons = []Season{Winter, Spring, Summer, Fall}

// SeasonOf maps a month to its season: Mar-May spring, Jun-Aug summer,
// Sep-Nov fall, otherwise winter.
func SeasonOf(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Fall
	default:
		return Winter
	}
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate returns midnight UTC of the calendar day t falls on in its own
// location.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// dayKey is a compact map key for a calendar day.
func dayKey(t time.Time) int64 {
	return Truncate(t).Unix() / 86400
}

// Day carries the derived attributes of a single calendar day.
type Day struct {
	Date        time.Time
	Holiday     string
	Discounted  bool
	HighTraffic bool
	Season      Season
}

// IsHoliday reports whether the day is in the holiday table.
func (d Day) IsHoliday() bool {
	return d.Holiday != NormalDay
}

// Resolver maps dates to Day values. It holds no randomness and is safe to
// share.
type Resolver struct {
	holidays  *Holidays
	discounts *DiscountPeriods
}

// NewResolver returns a Resolver over an immutable holiday table and discount
// set. A nil discount set means no promotional days.
func NewResolver(holidays *Holidays, discounts *DiscountPeriods) *Resolver {
	if holidays == nil {
		holidays = NewHolidays(nil)
	}
	if discounts == nil {
		discounts = NewDiscountPeriods()
	}
	return &Resolver{holidays: holidays, discounts: discounts}
}

// Resolve returns the attributes of the day containing t. Holidays are always
// discount days; other dates are discounted when they are in the discount set.
func (r *Resolver) Resolve(t time.Time) Day {
	date := Truncate(t)
	d := Day{
		Date:    date,
		Holiday: NormalDay,
		Season:  SeasonOf(date.Month()),
	}
	if name, ok := r.holidays.Name(date); ok {
		d.Holiday = name
		d.Discounted = true
		d.HighTraffic = true
		return d
	}
	d.Discounted = r.discounts.Contains(date)
	return d
}
