package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

func newSelector(seed uint64) *Selector {
	return NewSelector(randx.New(seed), tuning.Default().Category)
}

func countOf(values []string) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	return counts
}

func TestEligible_Filters(t *testing.T) {
	s := newSelector(1)

	t.Run("off-season seasonal removed", func(t *testing.T) {
		got := s.Eligible(40, calendar.NormalDay, calendar.Summer)
		assert.Contains(t, got, product.CategorySummerSeasonal)
		assert.NotContains(t, got, product.CategoryWinterSeasonal)
		assert.NotContains(t, got, product.CategorySpringSeasonal)
		assert.NotContains(t, got, product.CategoryFallSeasonal)
	})

	t.Run("gifts never on normal days", func(t *testing.T) {
		for range 200 {
			assert.NotContains(t, s.Eligible(40, calendar.NormalDay, calendar.Fall), product.CategoryGifts)
		}
	})

	t.Run("gifts usually on holidays", func(t *testing.T) {
		present := 0
		for range 1000 {
			if assertContains(s.Eligible(40, calendar.Christmas, calendar.Winter), product.CategoryGifts) {
				present++
			}
		}
		assert.InDelta(t, 900, present, 50)
	})

	t.Run("young customers skip cleaning", func(t *testing.T) {
		assert.NotContains(t, s.Eligible(20, calendar.NormalDay, calendar.Fall), product.CategoryCleaning)
		assert.Contains(t, s.Eligible(25, calendar.NormalDay, calendar.Fall), product.CategoryCleaning)
	})

	t.Run("older customers skip candy", func(t *testing.T) {
		assert.NotContains(t, s.Eligible(60, calendar.NormalDay, calendar.Fall), product.CategoryCandy)
		assert.Contains(t, s.Eligible(55, calendar.NormalDay, calendar.Fall), product.CategoryCandy)
	})

	t.Run("chilled snacks mostly dropped in winter", func(t *testing.T) {
		present := 0
		for range 1000 {
			if assertContains(s.Eligible(40, calendar.NormalDay, calendar.Winter), product.CategoryChilledSnacks) {
				present++
			}
		}
		assert.InDelta(t, 200, present, 50)
	})
}

func assertContains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func TestWeights_Normalized(t *testing.T) {
	s := newSelector(2)
	eligible := s.Eligible(30, calendar.Halloween, calendar.Fall)
	weights := s.Weights(eligible, 30, calendar.Halloween, calendar.Fall)

	var total float64
	for _, w := range weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	idx := func(cat string) int {
		for i, c := range eligible {
			if c == cat {
				return i
			}
		}
		t.Fatalf("%s not eligible", cat)
		return -1
	}
	// Halloween boosts candy; the adult bracket boosts grocery.
	assert.Greater(t, weights[idx(product.CategoryCandy)], weights[idx(product.CategoryHousehold)])
	assert.Greater(t, weights[idx(product.CategoryGrocery)], weights[idx(product.CategoryHousehold)])
	assert.Greater(t, weights[idx(product.CategoryFallSeasonal)], weights[idx(product.CategoryHousehold)])
}

func TestSelect_LengthAndCap(t *testing.T) {
	s := newSelector(3)

	for _, n := range []int{1, 5, 14, 20, 40, 60, 100} {
		for range 50 {
			got := s.Select(n, 35, calendar.NormalDay, calendar.Spring)
			eligible := len(s.Eligible(35, calendar.NormalDay, calendar.Spring))

			assert.LessOrEqual(t, len(got), n)
			assert.LessOrEqual(t, len(got), 3*(eligible+1))
			for cat, c := range countOf(got) {
				assert.LessOrEqual(t, c, 3, "category %s repeated %d times", cat, c)
			}
		}
	}
}

func TestSelect_DistinctWhileEligibleRemain(t *testing.T) {
	s := newSelector(4)
	got := s.Select(5, 35, calendar.NormalDay, calendar.Summer)
	require.Len(t, got, 5)
	assert.Len(t, countOf(got), 5)
}

func TestSelect_Saturation(t *testing.T) {
	cfg := tuning.Default().Category
	cfg.Universe = []string{product.CategoryGrocery, product.CategorySnacks}
	s := NewSelector(randx.New(5), cfg)

	got := s.Select(10, 35, calendar.NormalDay, calendar.Spring)

	// Two eligible categories capped at three repeats each.
	assert.Len(t, got, 6)
	assert.Equal(t, map[string]int{product.CategoryGrocery: 3, product.CategorySnacks: 3}, countOf(got))
}

func TestSelect_NonPositive(t *testing.T) {
	assert.Nil(t, newSelector(6).Select(0, 30, calendar.NormalDay, calendar.Fall))
}
