// Package refdata generates the static master data consumed by the order
// generator: stores, products, pricing terms, employees, customers and
// vendors. Every table is derived deterministically from the random stream
// passed to New, so the same seed always yields the same reference data.
package refdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/randx"
)

// indefiniteShelfLife is the shelf life in days of non-perishables.
const indefiniteShelfLife = 1000

var (
	normalDiscounts  = []float64{0.05, 0.10, 0.15}
	holidayDiscounts = []float64{0.2, 0.3, 0.4, 0.5, 0.6}
	deliveryFees     = []int{20, 30, 40, 50}
)

// CustomerCounts sizes the customer roster per recurrence class.
type CustomerCounts struct {
	Recurring    int
	NonRecurring int
	OneTime      int
}

// Total returns the roster size.
func (c CustomerCounts) Total() int {
	return c.Recurring + c.NonRecurring + c.OneTime
}

// Generator produces reference tables from one random stream. Call its
// methods in a fixed order to keep the output reproducible.
type Generator struct {
	rnd *randx.Rand
}

// New returns a Generator drawing from rnd.
func New(rnd *randx.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Stores returns the store roster. Ids are STRMRT_STR_NN in roster order.
func (g *Generator) Stores() []store.Store {
	out := make([]store.Store, len(sites))
	for i, s := range sites {
		out[i] = store.Store{
			ID:           fmt.Sprintf("STRMRT_STR_%02d", i+1),
			Region:       s.region,
			Neighborhood: s.neighborhood,
			Population:   s.population,
			Size:         s.size,
			Parking:      s.parking,
			Tier:         s.tier,
		}
	}
	return out
}

// Products returns the product catalog of every store. Smaller stores carry
// fewer products per subcategory, but every store keeps at least one product
// per subcategory so that each category is stocked everywhere. Ids are
// STRMRT_PRD_SS_NNNN with a per-store counter.
func (g *Generator) Products(stores []store.Store) []product.Product {
	var out []product.Product
	for si, s := range stores {
		next := 1
		for _, cat := range catalog {
			for _, sub := range cat.subs {
				keep := max(1, len(sub.items)-g.removals(s.Size))
				life := shelfLifeDays(shelfLife[sub.name])
				vs := variants[sub.name]
				if len(vs) == 0 {
					vs = []variant{{"N/A", 1}}
				}

				for _, it := range sub.items[:keep] {
					ratings := g.balancedRatings(it.rating, len(vs))
					for vi, v := range vs {
						out = append(out, product.Product{
							ID:            fmt.Sprintf("STRMRT_PRD_%02d_%04d", si+1, next),
							StoreID:       s.ID,
							Category:      cat.name,
							Subcategory:   sub.name,
							Name:          it.name,
							Variant:       v.name,
							CostPrice:     decimal.NewFromFloat(it.cost).Mul(decimal.NewFromFloat(v.multiplier)).Round(2),
							ShelfLifeDays: life,
							Rating:        ratings[vi],
						})
						next++
					}
				}
			}
		}
	}
	return out
}

func (g *Generator) removals(size store.Size) int {
	switch size {
	case store.SizeLarge:
		return g.rnd.Between(1, 3)
	case store.SizeMedium:
		return g.rnd.Between(2, 4)
	default:
		return 4
	}
}

// balancedRatings returns n variant ratings whose mean is base.
func (g *Generator) balancedRatings(base float64, n int) []float64 {
	if n <= 1 {
		return []float64{round2(base)}
	}
	out := make([]float64, 0, n)
	var sum float64
	for range n - 1 {
		r := round2(g.rnd.Uniform(math.Max(1, base-0.3), math.Min(5, base+0.3)))
		out = append(out, r)
		sum += r
	}
	last := round2(base*float64(n) - sum)
	return append(out, math.Max(0, math.Min(5, last)))
}

// Markup returns the pricing terms of every product: twice the subcategory
// markup, and a discount of each type when the subcategory is eligible.
func (g *Generator) Markup(products []product.Product) []pricing.Entry {
	out := make([]pricing.Entry, len(products))
	for i, p := range products {
		markup, ok := subcategoryMarkup[p.Subcategory]
		if !ok {
			markup = 1
		}
		terms := pricing.Terms{
			Markup:          decimal.NewFromFloat(2 * markup).Round(2),
			NormalDiscount:  decimal.Zero,
			HolidayDiscount: decimal.Zero,
		}
		if normalDayDiscountItems[p.Subcategory] {
			terms.NormalDiscount = decimal.NewFromFloat(randx.Pick(g.rnd, normalDiscounts))
		}
		if holidayDiscountItems[p.Subcategory] {
			terms.HolidayDiscount = decimal.NewFromFloat(randx.Pick(g.rnd, holidayDiscounts))
		}
		out[i] = pricing.Entry{ProductID: p.ID, Terms: terms}
	}
	return out
}

// Employees returns every store's staff. Medium stores employ one fewer and
// small stores two fewer per role, with at least one per role. Ids are
// STRMRT_EMP_S_N with a per-store counter starting at 1.
func (g *Generator) Employees(stores []store.Store) []staff.Employee {
	ages := newAgeSampler(employeeAgeProbs)

	var out []staff.Employee
	for si, s := range stores {
		next := 1
		for _, dept := range departments {
			count := dept.count
			switch s.Size {
			case store.SizeMedium:
				count = max(1, count-1)
			case store.SizeSmall:
				count = max(1, count-2)
			}
			for ri, role := range dept.roles {
				for range count {
					share, ok := maleShare[role]
					if !ok {
						share = 0.5
					}
					out = append(out, staff.Employee{
						ID:         "STRMRT_EMP_" + strconv.Itoa(si+1) + "_" + strconv.Itoa(next),
						StoreID:    s.ID,
						Age:        ages.draw(g.rnd),
						Gender:     gender(g.rnd, share),
						Department: dept.name,
						Role:       role,
						HourlyRate: decimal.NewFromFloat(dept.rates[ri]),
					})
					next++
				}
			}
		}
	}
	return out
}

// Customers returns a shuffled roster. Recurring customers are members with
// probability 0.55, non-recurring with 0.05 and one-time customers never.
// Ids STRMRT_CSTMR_N are assigned after shuffling, starting at 1.
func (g *Generator) Customers(counts CustomerCounts) []customer.Customer {
	ages := newAgeSampler(customerAgeProbs)

	out := make([]customer.Customer, 0, counts.Total())
	add := func(n int, class customer.Recurrence, memberRate float64) {
		for range n {
			out = append(out, customer.Customer{
				Age:        ages.draw(g.rnd),
				Gender:     gender(g.rnd, customerMaleShare),
				Member:     g.rnd.Bernoulli(memberRate),
				Recurrence: class,
			})
		}
	}
	add(counts.Recurring, customer.Recurring, recurringMembers)
	add(counts.NonRecurring, customer.NonRecurring, occasionalMembers)
	add(counts.OneTime, customer.OneTime, 0)

	randx.Shuffle(g.rnd, out)
	for i := range out {
		out[i].ID = "STRMRT_CSTMR_" + strconv.Itoa(i+1)
	}
	return out
}

func gender(rnd *randx.Rand, maleShare float64) string {
	if rnd.Bernoulli(maleShare) {
		return "Male"
	}
	return "Female"
}

// shelfLifeDays parses "N days|weeks|months|years" or "Indefinite".
// Unknown units count as days; unparsable values as indefinite.
func shelfLifeDays(s string) int {
	if s == "" || s == "Indefinite" {
		return indefiniteShelfLife
	}
	fields := strings.Fields(s)
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return indefiniteShelfLife
	}
	if len(fields) < 2 {
		return n
	}
	switch fields[1] {
	case "weeks", "week":
		return n * 7
	case "months", "month":
		return n * 30
	case "years", "year":
		return n * 365
	default:
		return n
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ageSampler draws ages uniformly within groups picked by group probability.
type ageSampler struct {
	ages    []int
	weights []float64
}

func newAgeSampler(groupProbs []float64) ageSampler {
	var s ageSampler
	for i, g := range ageGroups {
		n := g.to - g.from + 1
		for age := g.from; age <= g.to; age++ {
			s.ages = append(s.ages, age)
			s.weights = append(s.weights, groupProbs[i]/float64(n))
		}
	}
	return s
}

func (s ageSampler) draw(rnd *randx.Rand) int {
	return s.ages[rnd.Weighted(s.weights)]
}
