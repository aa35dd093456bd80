package calendar

import (
	"sort"
	"time"
)

// Holiday names used by the holiday table.
const (
	NewYear          = "New Year"
	Superbowl        = "Superbowl"
	ValentinesDay    = "Valentine's Day"
	StPatricksDay    = "St. Patrick's Day"
	Easter           = "Easter"
	CincoDeMayo      = "Cinco de Mayo"
	MothersDay       = "Mother's Day"
	MemorialDay      = "Memorial Day"
	FathersDay       = "Father's Day"
	IndependenceDay  = "Independence Day"
	BackToSchool     = "Back to School"
	LaborDay         = "Labor Day"
	Halloween        = "Halloween"
	VeteransDay      = "Veterans Day"
	Thanksgiving     = "Thanksgiving & Black Friday"
	Christmas        = "Christmas"
	ChristmasNewYear = "Christmas/New Year"
)

// Entry is a single row of the holiday table.
type Entry struct {
	Date time.Time
	Name string
}

// Holidays is an immutable date to holiday-name table. Its dates form the
// high-traffic period set.
type Holidays struct {
	names map[int64]string
}

// NewHolidays builds a table from explicit dates.
func NewHolidays(table map[time.Time]string) *Holidays {
	h := &Holidays{names: make(map[int64]string, len(table))}
	for d, name := range table {
		h.names[dayKey(d)] = name
	}
	return h
}

// Name returns the holiday name of t, if any.
func (h *Holidays) Name(t time.Time) (string, bool) {
	name, ok := h.names[dayKey(t)]
	return name, ok
}

// InHighTraffic reports whether t belongs to a high-traffic period.
func (h *Holidays) InHighTraffic(t time.Time) bool {
	_, ok := h.names[dayKey(t)]
	return ok
}

// Entries returns the table sorted by date.
func (h *Holidays) Entries() []Entry {
	out := make([]Entry, 0, len(h.names))
	for k, name := range h.names {
		out = append(out, Entry{Date: time.Unix(k*86400, 0).UTC(), Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Len returns the number of holiday dates.
func (h *Holidays) Len() int {
	return len(h.names)
}

// span names every day of [from, from+days).
type span struct {
	name string
	from time.Time
	days int
}

// USHolidays computes the holiday table for every year in [fromYear, toYear].
// When spans overlap, the earlier span in the yearly list wins.
func USHolidays(fromYear, toYear int) *Holidays {
	h := &Holidays{names: make(map[int64]string)}
	for year := fromYear; year <= toYear; year++ {
		for _, s := range yearSpans(year) {
			for i := range s.days {
				k := dayKey(s.from.AddDate(0, 0, i))
				if _, taken := h.names[k]; !taken {
					h.names[k] = s.name
				}
			}
		}
	}
	return h
}

func yearSpans(year int) []span {
	thanksgiving := nthWeekday(year, time.November, time.Thursday, 4)
	return []span{
		{NewYear, Date(year, time.January, 1), 1},
		{Superbowl, nthWeekday(year, time.February, time.Sunday, 2), 1},
		{ValentinesDay, Date(year, time.February, 13), 2},
		{StPatricksDay, Date(year, time.March, 17), 1},
		{Easter, easterSunday(year).AddDate(0, 0, -1), 2},
		{CincoDeMayo, Date(year, time.May, 5), 1},
		{MothersDay, nthWeekday(year, time.May, time.Sunday, 2).AddDate(0, 0, -1), 2},
		{MemorialDay, lastWeekday(year, time.May, time.Monday), 1},
		{FathersDay, nthWeekday(year, time.June, time.Sunday, 3), 1},
		{IndependenceDay, Date(year, time.July, 3), 2},
		{BackToSchool, nthWeekday(year, time.August, time.Monday, 2), 5},
		{LaborDay, nthWeekday(year, time.September, time.Monday, 1), 1},
		{Halloween, Date(year, time.October, 29), 3},
		{VeteransDay, Date(year, time.November, 11), 1},
		{Thanksgiving, thanksgiving.AddDate(0, 0, -1), 3},
		{Christmas, Date(year, time.December, 20), 6},
		{ChristmasNewYear, Date(year, time.December, 26), 6},
	}
}

// nthWeekday returns the n-th (1-based) given weekday of a month.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	first := Date(year, month, 1)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

// lastWeekday returns the last given weekday of a month.
func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	last := Date(year, month+1, 1).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// easterSunday uses the anonymous Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, time.Month(month), day)
}
