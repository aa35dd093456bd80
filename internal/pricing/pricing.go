// Package pricing computes per-line unit prices from cost, markup, the day's
// product discount and the membership discount.
package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
)

var (
	one  = decimal.NewFromInt(1)
	zero = decimal.Zero
)

// DiscountSelection decides which product discount applies on a discount day.
type DiscountSelection string

const (
	// SelectLegacy applies the holiday discount on every discount day,
	// including promotional days that are not holidays. This reproduces the
	// historical datasets.
	SelectLegacy DiscountSelection = "legacy"
	// SelectByDayType applies the normal-day discount on promotional days and
	// the holiday discount on holidays.
	SelectByDayType DiscountSelection = "by-day-type"
)

// ErrUnknownSelection is returned for an unrecognized discount selection.
var ErrUnknownSelection = errors.New("unknown discount selection")

// ParseDiscountSelection validates a configured selection. Empty means legacy.
func ParseDiscountSelection(s string) (DiscountSelection, error) {
	switch DiscountSelection(s) {
	case "", SelectLegacy:
		return SelectLegacy, nil
	case SelectByDayType:
		return SelectByDayType, nil
	default:
		return "", errors.Wrapf(ErrUnknownSelection, "%q", s)
	}
}

// Engine prices order lines.
type Engine struct {
	membership decimal.Decimal
	selection  DiscountSelection
}

// NewEngine returns an Engine applying membershipDiscount (e.g. 0.15) to
// member purchases.
func NewEngine(membershipDiscount float64, selection DiscountSelection) *Engine {
	if selection == "" {
		selection = SelectLegacy
	}
	return &Engine{
		membership: decimal.NewFromFloat(membershipDiscount),
		selection:  selection,
	}
}

// Price returns the unit price rounded to cents:
//
//	cost * (1 + markup*(1-discountPct)) * (1 - membership)
//
// The membership factor only applies when member is set. Negative results
// are clamped to zero.
func (e *Engine) Price(cost, markup, discountPct decimal.Decimal, member bool) decimal.Decimal {
	effective := markup.Mul(one.Sub(discountPct))
	price := cost.Mul(one.Add(effective))
	if member {
		price = price.Mul(one.Sub(e.membership))
	}
	return floorAtZero(price).Round(2)
}

// Discount picks the product discount for day from terms.
func (e *Engine) Discount(terms Terms, day calendar.Day) decimal.Decimal {
	if !day.Discounted {
		return zero
	}
	if e.selection == SelectByDayType && !day.IsHoliday() {
		return terms.NormalDiscount
	}
	return terms.HolidayDiscount
}

// Quote prices one unit of a product with the given terms on day.
func (e *Engine) Quote(cost decimal.Decimal, terms Terms, day calendar.Day, member bool) decimal.Decimal {
	return e.Price(cost, terms.Markup, e.Discount(terms, day), member)
}

// floorAtZero clamps negative values to zero.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}
