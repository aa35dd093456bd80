package app

import (
	"time"

	"github.com/go-faster/errors"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/refdata"
)

// Reference is the read-only master data of a run.
type Reference struct {
	Stores      []store.Store
	Products    []product.Product
	Markup      []pricing.Entry
	Employees   []staff.Employee
	Customers   []customer.Customer
	Vendors     []refdata.Vendor
	VendorItems []refdata.VendorItem

	Holidays  *calendar.Holidays
	Discounts *calendar.DiscountPeriods
}

// BuildReference generates the master data and the calendar for the window
// [start, end).
func BuildReference(cfg *Config, start, end time.Time) (*Reference, error) {
	g := refdata.New(randx.New(cfg.ReferenceSeed))

	ref := &Reference{}
	ref.Stores = g.Stores()
	ref.Products = g.Products(ref.Stores)
	ref.Markup = g.Markup(ref.Products)
	ref.Employees = g.Employees(ref.Stores)
	ref.Customers = g.Customers(cfg.CustomerCounts())
	ref.Vendors, ref.VendorItems = g.Vendors(ref.Products)

	last := end.AddDate(0, 0, -1)
	ref.Holidays = calendar.USHolidays(start.Year(), last.Year())

	discounts, err := calendar.GenerateDiscountPeriods(randx.New(cfg.Discounts.Seed), ref.Holidays, calendar.DiscountPlan{
		Groups:   cfg.Discounts.Groups,
		Lengths:  cfg.Discounts.Lengths,
		FromYear: start.Year(),
		ToYear:   last.Year(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate discount periods")
	}
	ref.Discounts = discounts

	return ref, nil
}
