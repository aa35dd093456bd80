// Package traffic estimates how many customers visit a store on a given day.
package traffic

import (
	"math"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

// Estimator draws daily customer counts. Every factor is sampled around a
// tuned center, so only the expectation is stable across runs with
// different seeds.
type Estimator struct {
	rnd *randx.Rand
	t   tuning.Traffic
}

// NewEstimator returns an Estimator drawing from rnd.
func NewEstimator(rnd *randx.Rand, t tuning.Traffic) *Estimator {
	return &Estimator{rnd: rnd, t: t}
}

// Estimate returns the customer count of s on day. Zero is a valid outcome.
func (e *Estimator) Estimate(day calendar.Day, s store.Store) int {
	t := e.t
	r := e.rnd

	base := t.BaseCustomers * r.Normal(1.0, t.BaseNoise)

	tierCenter := 1.0
	if choices := t.TierChoices[s.Tier]; len(choices) > 0 {
		tierCenter = randx.Pick(r, choices)
	}
	tier := r.Normal(tierCenter, t.TierNoise)

	parking := lookup(t.Parking, s.Parking) * r.Normal(1.0, t.ParkingNoise)
	month := lookup(t.Month, day.Date.Month()) * r.Normal(1.0, t.MonthNoise)
	weekday := lookup(t.Weekday, day.Date.Weekday()) * r.Normal(1.0, t.WeekdayNoise)

	holiday := 1.0
	if day.HighTraffic {
		holiday = t.HolidayMultiplier(day.Holiday) * r.Normal(1.0, t.HolidayNoise)
	}

	discountCenter := t.RegularDay
	if day.Discounted {
		discountCenter = t.DiscountDay
	}
	discount := discountCenter * r.Normal(1.0, t.DiscountNoise)

	count := base * tier * parking * month * weekday * holiday * discount
	if count <= 0 || math.IsNaN(count) {
		return 0
	}
	return int(count)
}

// lookup returns the multiplier for key, or 1.0 when absent.
func lookup[K comparable](m map[K]float64, key K) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return 1.0
}
