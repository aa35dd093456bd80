package tuning

import (
	"time"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/store"
)

// Default returns the tuned parameter set.
func Default() Tuning {
	return Tuning{
		Traffic:  defaultTraffic(),
		Basket:   defaultBasket(),
		Category: defaultCategory(),
		Split: Split{
			HalfCapRate:  0.70,
			ThirdCapRate: 0.20,
		},
		Pricing: Pricing{
			MembershipDiscount: 0.15,
		},
		Visits: map[customer.Recurrence]customer.VisitRange{
			customer.Recurring:    {Min: 12, Max: 18},
			customer.NonRecurring: {Min: 3, Max: 6},
			customer.OneTime:      {Min: 1, Max: 2},
		},
		OpenHour:  7,
		CloseHour: 22,
	}
}

func defaultTraffic() Traffic {
	return Traffic{
		BaseCustomers: 70,
		BaseNoise:     0.1,
		TierChoices: map[store.Tier][]float64{
			store.TierHigh:   {1.10, 1.15, 1.20},
			store.TierMedium: {0.90, 1.00, 1.10},
			store.TierLow:    {0.90, 0.85, 1.10},
		},
		TierNoise: 0.1,
		Parking: map[store.Parking]float64{
			store.ParkingVeryLimited: 0.95,
			store.ParkingLimited:     0.97,
			store.ParkingModerate:    1.00,
			store.ParkingAdequate:    1.03,
			store.ParkingSpacious:    1.07,
		},
		ParkingNoise: 0.02,
		Month: map[time.Month]float64{
			time.January:   0.95,
			time.February:  0.75,
			time.March:     0.83,
			time.April:     0.95,
			time.May:       0.92,
			time.June:      1.05,
			time.July:      1.10,
			time.August:    1.12,
			time.September: 1.12,
			time.October:   1.20,
			time.November:  1.35,
			time.December:  1.50,
		},
		MonthNoise: 0.01,
		Weekday: map[time.Weekday]float64{
			time.Monday:    1.00,
			time.Tuesday:   0.85,
			time.Wednesday: 0.90,
			time.Thursday:  1.05,
			time.Friday:    1.10,
			time.Saturday:  1.20,
			time.Sunday:    1.15,
		},
		WeekdayNoise: 0.02,
		Holiday: map[string]float64{
			calendar.LaborDay:        1.02,
			calendar.FathersDay:      1.03,
			calendar.VeteransDay:     1.08,
			calendar.BackToSchool:    1.10,
			calendar.MemorialDay:     1.10,
			calendar.ValentinesDay:   1.12,
			calendar.MothersDay:      1.13,
			calendar.StPatricksDay:   1.15,
			calendar.IndependenceDay: 1.15,
			calendar.Superbowl:       1.17,
			calendar.CincoDeMayo:     1.22,
			calendar.Easter:          1.27,
			calendar.NewYear:         1.60,
			calendar.Halloween:       1.70,
			calendar.Thanksgiving:    1.75,
			calendar.Christmas:       1.90,
		},
		UnmappedHoliday: 0.80,
		HolidayNoise:    0.2,
		DiscountDay:     1.2,
		RegularDay:      0.85,
		DiscountNoise:   0.2,
	}
}

func defaultBasket() Basket {
	return Basket{
		BaseMean: 15,
		BaseStd:  0.5,
		Weekday: map[time.Weekday]float64{
			time.Monday:    0.95,
			time.Tuesday:   0.90,
			time.Wednesday: 0.92,
			time.Thursday:  1.00,
			time.Friday:    1.05,
			time.Saturday:  1.15,
			time.Sunday:    1.10,
		},
		Tier: map[store.Tier]float64{
			store.TierHigh:   1.10,
			store.TierMedium: 1.00,
			store.TierLow:    0.90,
		},
		Member:         1.10,
		NonMember:      0.95,
		ImpactNoise:    0.10,
		DiscountImpact: 1.20,
		DiscountSigma:  0.15,
		Holiday: map[string]float64{
			calendar.Christmas:        1.60,
			calendar.ChristmasNewYear: 1.35,
			calendar.Thanksgiving:     1.55,
			calendar.NewYear:          1.30,
			calendar.Easter:           1.25,
			calendar.Halloween:        1.20,
			calendar.IndependenceDay:  1.25,
			calendar.Superbowl:        1.20,
			calendar.MemorialDay:      1.15,
			calendar.LaborDay:         1.10,
			calendar.BackToSchool:     1.15,
			calendar.ValentinesDay:    1.10,
			calendar.MothersDay:       1.10,
			calendar.FathersDay:       1.08,
			calendar.CincoDeMayo:      1.12,
			calendar.StPatricksDay:    1.08,
			calendar.VeteransDay:      1.05,
		},
		HolidaySigma:   0.20,
		HolidayWeight:  1.5,
		DiscountWeight: 1.25,
	}
}

func defaultCategory() Category {
	return Category{
		Universe: product.Categories,
		Seasonal: map[calendar.Season]string{
			calendar.Winter: product.CategoryWinterSeasonal,
			calendar.Spring: product.CategorySpringSeasonal,
			calendar.Summer: product.CategorySummerSeasonal,
			calendar.Fall:   product.CategoryFallSeasonal,
		},
		SeasonWeights: map[calendar.Season]map[string]float64{
			calendar.Winter: {product.CategoryWinterSeasonal: 1.75, product.CategorySummerSeasonal: 0},
			calendar.Spring: {product.CategorySpringSeasonal: 1.5},
			calendar.Summer: {product.CategorySummerSeasonal: 1.75, product.CategoryWinterSeasonal: 0},
			calendar.Fall:   {product.CategoryFallSeasonal: 1.5},
		},
		HolidayAffinity: map[string][]string{
			calendar.Thanksgiving: {
				product.CategoryGrocery,
				product.CategoryPantry,
				product.CategoryBakery,
				product.CategoryMeatSeafood,
				product.CategoryGifts,
			},
			calendar.ChristmasNewYear: {
				product.CategoryGifts,
				product.CategoryBakery,
				product.CategoryMeatSeafood,
			},
			calendar.Easter:          {product.CategoryGrocery, product.CategoryCandy, product.CategoryBakery},
			calendar.Halloween:       {product.CategoryCandy, product.CategorySnacks},
			calendar.IndependenceDay: {product.CategoryMeatSeafood, product.CategorySnacks, product.CategoryBeverages},
			calendar.ValentinesDay:   {product.CategoryGifts, product.CategoryBakery, product.CategoryCandy},
		},
		HolidayBoost:          1.4,
		ChilledSnacks:         product.CategoryChilledSnacks,
		WinterChilledDropRate: 0.8,
		Gifts:                 product.CategoryGifts,
		GiftsDropRate:         0.1,
		CleaningSupplies:      product.CategoryCleaning,
		CleaningMinAge:        25,
		Candy:                 product.CategoryCandy,
		CandyMaxAge:           55,
		AgeBrackets: []AgeBracket{
			{MinAge: 18, MaxAge: 25, Factors: map[string]float64{
				product.CategorySnacks:    1.2,
				product.CategoryBeverages: 1.2,
				product.CategoryBreakfast: 1.2,
				product.CategoryCandy:     1.2,
				product.CategoryHousehold: 0.85,
				product.CategoryCleaning:  0.85,
			}},
			{MinAge: 26, MaxAge: 50, Factors: map[string]float64{
				product.CategoryGrocery:     1.3,
				product.CategoryMeatSeafood: 1.3,
				product.CategoryCleaning:    1.3,
				product.CategoryPantry:      1.3,
			}},
			{MinAge: 51, MaxAge: 200, Factors: map[string]float64{
				product.CategoryPantry:    1.4,
				product.CategoryGrocery:   1.4,
				product.CategoryHousehold: 1.4,
				product.CategoryCandy:     0.6,
				product.CategorySnacks:    0.6,
				product.CategoryBeverages: 0.6,
			}},
		},
		MaxRepeats: 3,
	}
}
