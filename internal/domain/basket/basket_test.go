package basket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

func sum(parts []int) int {
	total := 0
	for _, p := range parts {
		total += p
	}
	return total
}

func TestSplit_SumsToTotal(t *testing.T) {
	s := NewSplitter(randx.New(11), tuning.Default().Split)

	for total := 1; total <= 200; total++ {
		for _, minPart := range []int{1, 2, 3} {
			for range 20 {
				parts := s.Split(total, minPart)
				require.Equal(t, total, sum(parts), "total=%d min=%d parts=%v", total, minPart, parts)

				for _, p := range parts {
					if total >= minPart {
						require.GreaterOrEqual(t, p, minPart, "total=%d parts=%v", total, parts)
					}
					require.Positive(t, p)
				}
			}
		}
	}
}

func TestSplit_SmallCapStillCovers(t *testing.T) {
	// Forcing the half-cap policy on total=3 gives cap=1; parts must still
	// cover the whole total.
	s := NewSplitter(randx.New(1), tuning.Split{HalfCapRate: 1})
	assert.Equal(t, []int{1, 1, 1}, s.Split(3, 1))
}

func TestSplit_WholeTotalPolicy(t *testing.T) {
	s := NewSplitter(randx.New(5), tuning.Split{})
	for range 50 {
		parts := s.Split(10, 1)
		assert.Equal(t, 10, sum(parts))
	}
}

func TestSplit_Degenerate(t *testing.T) {
	s := NewSplitter(randx.New(1), tuning.Default().Split)
	assert.Nil(t, s.Split(0, 1))
	assert.Equal(t, []int{1}, s.Split(1, 1))
	assert.Equal(t, []int{2}, s.Split(2, 5))
}

func TestSize_AtLeastOne(t *testing.T) {
	b := tuning.Default().Basket
	b.BaseMean = 0.2
	s := NewSizer(randx.New(2), b)
	day := calendar.Day{Date: calendar.Date(2024, time.March, 5), Holiday: calendar.NormalDay}

	for range 1000 {
		assert.GreaterOrEqual(t, s.Size(day, store.TierLow, false), 1)
	}
}

func TestSize_PromotionsRaiseMean(t *testing.T) {
	s := NewSizer(randx.New(3), tuning.Default().Basket)

	regular := calendar.Day{Date: calendar.Date(2024, time.December, 10), Holiday: calendar.NormalDay}
	christmas := calendar.Day{
		Date:       calendar.Date(2024, time.December, 24),
		Holiday:    calendar.Christmas,
		Discounted: true,
	}

	mean := func(day calendar.Day) float64 {
		total := 0
		for range 5000 {
			total += s.Size(day, store.TierMedium, true)
		}
		return float64(total) / 5000
	}

	assert.Greater(t, mean(christmas), mean(regular)*1.3)
}
