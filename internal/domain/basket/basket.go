// Package basket sizes customer baskets and splits a basket into per-line
// purchase quantities.
package basket

import (
	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

// Sizer draws the number of items a customer buys.
type Sizer struct {
	rnd *randx.Rand
	t   tuning.Basket
}

// NewSizer returns a Sizer drawing from rnd.
func NewSizer(rnd *randx.Rand, t tuning.Basket) *Sizer {
	return &Sizer{rnd: rnd, t: t}
}

// Size returns the basket size for one visit, at least 1.
//
// The core value is the base draw scaled by weekday, store tier and
// membership factors. Discount and holiday effects are right-skewed and enter
// as additive bonuses proportional to the base draw.
func (s *Sizer) Size(day calendar.Day, tier store.Tier, member bool) int {
	t := s.t
	r := s.rnd

	base := r.Normal(t.BaseMean, t.BaseStd)

	weekday := r.Normal(valueOr(t.Weekday[day.Date.Weekday()], 1.0), t.ImpactNoise)
	tierImpact := r.Normal(valueOr(t.Tier[tier], 1.0), t.ImpactNoise)
	memberCenter := t.NonMember
	if member {
		memberCenter = t.Member
	}
	memberImpact := r.Normal(memberCenter, t.ImpactNoise)

	discountImpact := 1.0
	if day.Discounted {
		discountImpact = r.RightSkewed(t.DiscountImpact, t.DiscountSigma)
	}
	holidayImpact := 1.0
	if day.IsHoliday() {
		holidayImpact = r.RightSkewed(t.HolidayImpact(day.Holiday), t.HolidaySigma)
	}

	core := base * weekday * tierImpact * memberImpact
	holidayBonus := t.HolidayWeight * base * (holidayImpact - 1)
	discountBonus := t.DiscountWeight * base * (discountImpact - 1)

	return max(1, int(core+holidayBonus+discountBonus))
}

func valueOr(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
