// Package tuning holds every tuned constant of the order generator in one
// value object. Lookups that can miss have a single documented fallback here
// instead of ad hoc defaults at each call site.
package tuning

import (
	"time"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/store"
)

// Tuning aggregates the parameters of all submodels.
type Tuning struct {
	Traffic  Traffic
	Basket   Basket
	Category Category
	Split    Split
	Pricing  Pricing
	Visits   map[customer.Recurrence]customer.VisitRange
	// OpenHour and CloseHour bound the daily operating window [open, close).
	OpenHour  int
	CloseHour int
}

// Traffic parameterizes the daily customer count model. Every multiplier is
// perturbed by Gaussian noise with the matching *Noise standard deviation.
type Traffic struct {
	BaseCustomers float64
	BaseNoise     float64

	// TierChoices lists the candidate centers per store tier; one is picked
	// uniformly per estimate.
	TierChoices map[store.Tier][]float64
	TierNoise   float64

	Parking      map[store.Parking]float64
	ParkingNoise float64

	Month      map[time.Month]float64
	MonthNoise float64

	Weekday      map[time.Weekday]float64
	WeekdayNoise float64

	Holiday map[string]float64
	// UnmappedHoliday applies to high-traffic dates whose name has no entry.
	UnmappedHoliday float64
	HolidayNoise    float64

	DiscountDay   float64
	RegularDay    float64
	DiscountNoise float64
}

// HolidayMultiplier returns the traffic multiplier for a holiday name,
// falling back to UnmappedHoliday.
func (t Traffic) HolidayMultiplier(name string) float64 {
	if m, ok := t.Holiday[name]; ok {
		return m
	}
	return t.UnmappedHoliday
}

// Basket parameterizes the per-customer basket size model.
type Basket struct {
	BaseMean float64
	BaseStd  float64

	Weekday     map[time.Weekday]float64
	Tier        map[store.Tier]float64
	Member      float64
	NonMember   float64
	ImpactNoise float64

	// DiscountImpact is the median of the right-skewed discount effect.
	DiscountImpact float64
	DiscountSigma  float64

	// Holiday holds the median of the right-skewed holiday effect per name;
	// names without an entry use 1.0 (no effect).
	Holiday      map[string]float64
	HolidaySigma float64

	HolidayWeight  float64
	DiscountWeight float64
}

// HolidayImpact returns the holiday effect median, 1.0 when unmapped.
func (b Basket) HolidayImpact(name string) float64 {
	if m, ok := b.Holiday[name]; ok {
		return m
	}
	return 1.0
}

// Category parameterizes basket category selection.
type Category struct {
	// Universe is the full category list in a fixed order.
	Universe []string
	// Seasonal maps each season to its seasonal category.
	Seasonal map[calendar.Season]string
	// SeasonWeights multiplies category weights per season; 0 removes.
	SeasonWeights map[calendar.Season]map[string]float64
	// HolidayAffinity lists categories boosted by HolidayBoost per holiday.
	HolidayAffinity map[string][]string
	HolidayBoost    float64

	ChilledSnacks         string
	WinterChilledDropRate float64
	Gifts                 string
	GiftsDropRate         float64
	CleaningSupplies      string
	CleaningMinAge        int
	Candy                 string
	CandyMaxAge           int

	AgeBrackets []AgeBracket
	// MaxRepeats caps how many times one category may appear in a basket.
	MaxRepeats int
}

// AgeBracket multiplies category weights for customers aged [MinAge, MaxAge].
type AgeBracket struct {
	MinAge  int
	MaxAge  int
	Factors map[string]float64
}

// Split parameterizes the quantity splitter cap policy.
type Split struct {
	HalfCapRate  float64
	ThirdCapRate float64
}

// Pricing parameterizes the pricing engine.
type Pricing struct {
	MembershipDiscount float64
}
