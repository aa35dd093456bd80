package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/randx"
)

func TestStores(t *testing.T) {
	stores := New(randx.New(1)).Stores()
	require.Len(t, stores, len(sites))
	assert.Equal(t, "STRMRT_STR_01", stores[0].ID)
	assert.Equal(t, "STRMRT_STR_20", stores[19].ID)

	seen := make(map[string]bool)
	for _, s := range stores {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
		assert.NotEmpty(t, s.Region)
		assert.Positive(t, s.Population)
	}
}

func TestProducts_EveryCategoryStockedEverywhere(t *testing.T) {
	g := New(randx.New(42))
	stores := g.Stores()
	catalogIdx := product.NewCatalog(g.Products(stores))

	for _, s := range stores {
		for _, cat := range product.Categories {
			assert.NotEmpty(t, catalogIdx.InCategory(s.ID, cat), "store %s lacks %s", s.ID, cat)
		}
	}
}

func TestProducts_Shape(t *testing.T) {
	g := New(randx.New(42))
	stores := g.Stores()
	products := g.Products(stores)

	ids := make(map[string]bool, len(products))
	perStore := make(map[string]int)
	for _, p := range products {
		require.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		perStore[p.StoreID]++

		assert.True(t, strings.HasPrefix(p.ID, "STRMRT_PRD_"))
		assert.True(t, p.CostPrice.IsPositive())
		assert.Positive(t, p.ShelfLifeDays)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
	assert.Equal(t, "STRMRT_PRD_01_0001", products[0].ID)

	// Large stores remove fewer products than small ones.
	var large, small string
	for _, s := range stores {
		switch s.Size {
		case store.SizeLarge:
			large = s.ID
		case store.SizeSmall:
			small = s.ID
		}
	}
	assert.Greater(t, perStore[large], perStore[small])
}

func TestProducts_Deterministic(t *testing.T) {
	a := New(randx.New(7))
	b := New(randx.New(7))
	assert.Equal(t, a.Products(a.Stores()), b.Products(b.Stores()))
}

func TestBalancedRatings(t *testing.T) {
	g := New(randx.New(3))
	assert.Equal(t, []float64{4.12}, g.balancedRatings(4.123, 1))

	ratings := g.balancedRatings(4.0, 3)
	require.Len(t, ratings, 3)
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	assert.InDelta(t, 12.0, sum, 0.02)
}

func TestMarkup(t *testing.T) {
	g := New(randx.New(42))
	products := g.Products(g.Stores())
	entries := g.Markup(products)
	require.Len(t, entries, len(products))

	for i, e := range entries {
		p := products[i]
		assert.Equal(t, p.ID, e.ProductID)
		assert.True(t, e.Markup.IsPositive())
		if !normalDayDiscountItems[p.Subcategory] {
			assert.True(t, e.NormalDiscount.IsZero(), "%s not eligible for normal discount", p.Subcategory)
		} else {
			f := e.NormalDiscount.InexactFloat64()
			assert.Contains(t, normalDiscounts, f)
		}
		if !holidayDiscountItems[p.Subcategory] {
			assert.True(t, e.HolidayDiscount.IsZero())
		} else {
			assert.Contains(t, holidayDiscounts, e.HolidayDiscount.InexactFloat64())
		}
	}
}

func TestEmployees(t *testing.T) {
	g := New(randx.New(42))
	stores := g.Stores()
	roster := staff.NewRoster(g.Employees(stores))

	for _, s := range stores {
		assert.NotEmpty(t, roster.Cashiers(s.ID), "store %s has no cashiers", s.ID)
	}

	first := roster.Employees()[0]
	assert.Equal(t, "STRMRT_EMP_1_1", first.ID)
	assert.Equal(t, stores[0].ID, first.StoreID)
	for _, e := range roster.Employees() {
		assert.GreaterOrEqual(t, e.Age, 18)
		assert.LessOrEqual(t, e.Age, 70)
		assert.Contains(t, []string{"Male", "Female"}, e.Gender)
		assert.True(t, e.HourlyRate.IsPositive())
	}
}

func TestEmployees_SmallStoresHaveFewerStaff(t *testing.T) {
	g := New(randx.New(1))
	large := g.Employees([]store.Store{{ID: "L", Size: store.SizeLarge}})
	small := g.Employees([]store.Store{{ID: "S", Size: store.SizeSmall}})
	assert.Greater(t, len(large), len(small))
	assert.NotEmpty(t, staff.NewRoster(small).Cashiers("S"))
}

func TestCustomers(t *testing.T) {
	counts := CustomerCounts{Recurring: 2000, NonRecurring: 2000, OneTime: 1000}
	customers := New(randx.New(42)).Customers(counts)
	require.Len(t, customers, counts.Total())
	assert.Equal(t, "STRMRT_CSTMR_1", customers[0].ID)
	assert.Equal(t, "STRMRT_CSTMR_5000", customers[len(customers)-1].ID)

	byClass := make(map[customer.Recurrence]int)
	members := make(map[customer.Recurrence]int)
	for _, c := range customers {
		byClass[c.Recurrence]++
		if c.Member {
			members[c.Recurrence]++
		}
		assert.GreaterOrEqual(t, c.Age, 18)
		assert.LessOrEqual(t, c.Age, 70)
	}
	assert.Equal(t, 2000, byClass[customer.Recurring])
	assert.Equal(t, 1000, byClass[customer.OneTime])
	assert.Zero(t, members[customer.OneTime])
	assert.InDelta(t, 1100, members[customer.Recurring], 120)
	assert.InDelta(t, 100, members[customer.NonRecurring], 50)

	// Classes are shuffled rather than laid out in blocks.
	head := make(map[customer.Recurrence]int)
	for _, c := range customers[:counts.Recurring] {
		head[c.Recurrence]++
	}
	assert.Less(t, head[customer.Recurring], counts.Recurring)
}

func TestVendors(t *testing.T) {
	g := New(randx.New(42))
	stores := g.Stores()[:2]
	products := g.Products(stores)
	vendors, items := g.Vendors(products)

	perSub := make(map[string]int)
	for _, v := range vendors {
		perSub[v.Subcategory]++
		assert.Contains(t, deliveryFees, v.DeliveryFee)
		assert.True(t, strings.HasPrefix(v.ID, "STRMRT_VNDR_"))
	}
	for sub, n := range perSub {
		assert.GreaterOrEqual(t, n, 3, sub)
		assert.LessOrEqual(t, n, 5, sub)
	}

	cost := make(map[string]product.Product, len(products))
	for _, p := range products {
		cost[p.ID] = p
	}
	require.NotEmpty(t, items)
	for _, it := range items {
		p := cost[it.ProductID]
		assert.True(t, it.PerItemCost.LessThan(p.CostPrice), "%s costs %s from vendor, %s in store", p.ID, it.PerItemCost, p.CostPrice)
		assert.True(t, it.PerItemCost.IsPositive())
	}
	assert.Equal(t, "STRMRT_VNDR_1", items[0].ID)
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bread", "BRD"},
		{"Chips", "CHP"},
		{"Cookies", "CKYS"},
		{"Water", "WTR"},
		{"Nuts & Trail Mix", "NTST"},
		{"Oatmeal", "OTML"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, abbreviate(tt.in))
		})
	}
}

func TestUniqueSKUs(t *testing.T) {
	skus := uniqueSKUs([]string{"Bread", "Breads", "Chips"})
	assert.Equal(t, "BRD", skus["Bread"])
	assert.Equal(t, "BRD2", skus["Breads"])
	assert.Equal(t, "CHP", skus["Chips"])
}

func TestShelfLifeDays(t *testing.T) {
	assert.Equal(t, 5, shelfLifeDays("5 days"))
	assert.Equal(t, 14, shelfLifeDays("2 weeks"))
	assert.Equal(t, 180, shelfLifeDays("6 months"))
	assert.Equal(t, 730, shelfLifeDays("2 years"))
	assert.Equal(t, indefiniteShelfLife, shelfLifeDays("Indefinite"))
	assert.Equal(t, indefiniteShelfLife, shelfLifeDays(""))
}
