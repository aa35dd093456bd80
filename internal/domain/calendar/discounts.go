package calendar

import (
	"sort"
	"time"

	"github.com/go-faster/errors"

	"github.com/xenking/starmart-datagen/internal/randx"
)

// maxPlacementAttempts bounds the search for a group start that avoids every
// high-traffic date.
const maxPlacementAttempts = 10_000

// ErrNoDiscountPlacement is returned when a discount group cannot be placed
// outside the high-traffic periods.
var ErrNoDiscountPlacement = errors.New("cannot place discount group outside high-traffic periods")

// DiscountPlan describes how the discount period set is generated.
type DiscountPlan struct {
	// Groups is the number of groups generated per calendar year.
	Groups int
	// Lengths are the candidate group lengths in days, chosen uniformly.
	Lengths []int
	// FromYear and ToYear bound the generated years, inclusive.
	FromYear int
	ToYear   int
}

// DiscountPeriods is an immutable set of promotional dates.
type DiscountPeriods struct {
	days map[int64]struct{}
}

// NewDiscountPeriods builds a set from explicit dates.
func NewDiscountPeriods(dates ...time.Time) *DiscountPeriods {
	d := &DiscountPeriods{days: make(map[int64]struct{}, len(dates))}
	for _, t := range dates {
		d.days[dayKey(t)] = struct{}{}
	}
	return d
}

// GenerateDiscountPeriods draws plan.Groups groups of consecutive days per
// year. No day of a group falls in a high-traffic period. Groups may overlap
// each other, in which case the set simply contains the union.
func GenerateDiscountPeriods(rnd *randx.Rand, holidays *Holidays, plan DiscountPlan) (*DiscountPeriods, error) {
	if len(plan.Lengths) == 0 {
		return nil, errors.New("discount plan has no group lengths")
	}

	d := &DiscountPeriods{days: make(map[int64]struct{})}
	for year := plan.FromYear; year <= plan.ToYear; year++ {
		for range plan.Groups {
			length := randx.Pick(rnd, plan.Lengths)
			start, err := placeGroup(rnd, holidays, year, length)
			if err != nil {
				return nil, errors.Wrapf(err, "year %d, %d-day group", year, length)
			}
			for i := range length {
				d.days[dayKey(start.AddDate(0, 0, i))] = struct{}{}
			}
		}
	}
	return d, nil
}

func placeGroup(rnd *randx.Rand, holidays *Holidays, year, length int) (time.Time, error) {
	for range maxPlacementAttempts {
		month := time.Month(rnd.Between(1, 13))
		daysInMonth := Date(year, month+1, 1).AddDate(0, 0, -1).Day()
		start := Date(year, month, rnd.Between(1, daysInMonth+1))

		if !overlapsHighTraffic(holidays, start, length) {
			return start, nil
		}
	}
	return time.Time{}, ErrNoDiscountPlacement
}

func overlapsHighTraffic(holidays *Holidays, start time.Time, length int) bool {
	for i := range length {
		if holidays.InHighTraffic(start.AddDate(0, 0, i)) {
			return true
		}
	}
	return false
}

// Contains reports whether t is a promotional date.
func (d *DiscountPeriods) Contains(t time.Time) bool {
	_, ok := d.days[dayKey(t)]
	return ok
}

// Dates returns the set sorted ascending.
func (d *DiscountPeriods) Dates() []time.Time {
	out := make([]time.Time, 0, len(d.days))
	for k := range d.days {
		out = append(out, time.Unix(k*86400, 0).UTC())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Len returns the number of promotional dates.
func (d *DiscountPeriods) Len() int {
	return len(d.days)
}
