// Package category chooses which product categories the lines of a basket are
// drawn from, given the customer's age and the day's holiday and season.
package category

import (
	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

// Selector draws basket categories.
type Selector struct {
	rnd *randx.Rand
	t   tuning.Category
}

// NewSelector returns a Selector drawing from rnd.
func NewSelector(rnd *randx.Rand, t tuning.Category) *Selector {
	return &Selector{rnd: rnd, t: t}
}

// Select returns up to n category labels.
//
// The first min(n, eligible) labels are drawn without replacement. Further
// labels are drawn with replacement among categories still below the repeat
// cap, so the result may be shorter than n once every eligible category is
// saturated.
func (s *Selector) Select(n, age int, holiday string, season calendar.Season) []string {
	if n <= 0 {
		return nil
	}

	eligible := s.Eligible(age, holiday, season)
	weights := s.Weights(eligible, age, holiday, season)

	selected := make([]string, 0, n)
	counts := make([]int, len(eligible))

	// Without replacement.
	remaining := append([]float64(nil), weights...)
	for len(selected) < min(n, len(eligible)) {
		i := s.rnd.Weighted(remaining)
		if i < 0 {
			break
		}
		remaining[i] = 0
		counts[i]++
		selected = append(selected, eligible[i])
	}

	// With replacement, below the cap.
	avail := make([]float64, len(weights))
	for len(selected) < n {
		for i, w := range weights {
			avail[i] = 0
			if counts[i] < s.t.MaxRepeats {
				avail[i] = w
			}
		}
		i := s.rnd.Weighted(avail)
		if i < 0 {
			break
		}
		counts[i]++
		selected = append(selected, eligible[i])
	}

	return selected
}

// Eligible filters the category universe for one visit. Off-season seasonal
// categories are always removed; chilled snacks usually disappear in winter;
// gifts only appear on holidays and even then are occasionally skipped;
// young customers skip cleaning supplies and older ones skip candy.
func (s *Selector) Eligible(age int, holiday string, season calendar.Season) []string {
	t := s.t

	offSeason := make(map[string]bool, len(t.Seasonal))
	for sn, cat := range t.Seasonal {
		if sn != season {
			offSeason[cat] = true
		}
	}

	dropChilled := season == calendar.Winter && s.rnd.Bernoulli(t.WinterChilledDropRate)
	dropGifts := holiday == calendar.NormalDay || s.rnd.Bernoulli(t.GiftsDropRate)

	out := make([]string, 0, len(t.Universe))
	for _, cat := range t.Universe {
		switch {
		case offSeason[cat]:
		case dropChilled && cat == t.ChilledSnacks:
		case dropGifts && cat == t.Gifts:
		case age < t.CleaningMinAge && cat == t.CleaningSupplies:
		case age > t.CandyMaxAge && cat == t.Candy:
		default:
			out = append(out, cat)
		}
	}
	return out
}

// Weights returns a probability per eligible category: 1.0 adjusted by the
// customer's age bracket, the season, and the holiday's affinity list, then
// normalized. An all-zero vector is returned unnormalized.
func (s *Selector) Weights(eligible []string, age int, holiday string, season calendar.Season) []float64 {
	t := s.t

	var ageFactors map[string]float64
	for _, b := range t.AgeBrackets {
		if age >= b.MinAge && age <= b.MaxAge {
			ageFactors = b.Factors
			break
		}
	}

	boosted := make(map[string]bool)
	for _, cat := range t.HolidayAffinity[holiday] {
		boosted[cat] = true
	}
	seasonFactors := t.SeasonWeights[season]

	weights := make([]float64, len(eligible))
	var total float64
	for i, cat := range eligible {
		w := 1.0
		if f, ok := ageFactors[cat]; ok {
			w *= f
		}
		if f, ok := seasonFactors[cat]; ok {
			w *= f
		}
		if boosted[cat] {
			w *= t.HolidayBoost
		}
		weights[i] = w
		total += w
	}

	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}
	return weights
}
