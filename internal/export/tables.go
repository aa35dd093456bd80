package export

import (
	"time"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/inventory"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/refdata"
)

func Stores(stores []store.Store) Table {
	t := Table{
		Name:    "stores",
		Columns: []string{"store_id", "region", "neighborhood", "population", "store_size", "parking_space", "category"},
	}
	for _, s := range stores {
		t.Rows = append(t.Rows, []any{s.ID, s.Region, s.Neighborhood, s.Population, string(s.Size), string(s.Parking), string(s.Tier)})
	}
	return t
}

func Employees(employees []staff.Employee) Table {
	t := Table{
		Name:    "employees",
		Columns: []string{"emp_id", "store_id", "age", "gender", "department", "role", "hourly_rate"},
	}
	for _, e := range employees {
		t.Rows = append(t.Rows, []any{e.ID, e.StoreID, e.Age, e.Gender, e.Department, e.Role, e.HourlyRate})
	}
	return t
}

func Products(products []product.Product) Table {
	t := Table{
		Name: "products",
		Columns: []string{
			"product_id", "store_id", "category", "subcategory", "product_name",
			"variant", "cost_price", "shelf_life", "rating",
		},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []any{
			p.ID, p.StoreID, p.Category, p.Subcategory, p.Name,
			p.Variant, p.CostPrice, p.ShelfLifeDays, p.Rating,
		})
	}
	return t
}

func Markup(entries []pricing.Entry) Table {
	t := Table{
		Name:    "markup_discount",
		Columns: []string{"product_id", "markup", "normal_day_discount", "holiday_discount"},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []any{e.ProductID, e.Markup, e.NormalDiscount, e.HolidayDiscount})
	}
	return t
}

func Customers(customers []customer.Customer) Table {
	t := Table{
		Name:    "customers",
		Columns: []string{"customer_id", "age", "gender", "membership", "recurring"},
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, []any{c.ID, c.Age, c.Gender, c.Member, string(c.Recurrence)})
	}
	return t
}

func Vendors(vendors []refdata.Vendor) Table {
	t := Table{
		Name:    "vendors",
		Columns: []string{"vendor_id", "vendor_name", "subcategory", "delivery_fee"},
	}
	for _, v := range vendors {
		t.Rows = append(t.Rows, []any{v.ID, v.Name, v.Subcategory, v.DeliveryFee})
	}
	return t
}

func VendorItems(items []refdata.VendorItem) Table {
	t := Table{
		Name:    "vendor_items",
		Columns: []string{"vendor_unique_id", "vendor_id", "product_id", "per_item_cost"},
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []any{it.ID, it.VendorID, it.ProductID, it.PerItemCost})
	}
	return t
}

func HolidayLookup(h *calendar.Holidays) Table {
	t := Table{
		Name:    "holiday_lookup",
		Columns: []string{"holiday_date", "holiday_name"},
	}
	for _, e := range h.Entries() {
		t.Rows = append(t.Rows, []any{e.Date, e.Name})
	}
	return t
}

// HolidayDates lists the high-traffic dates.
func HolidayDates(h *calendar.Holidays) Table {
	t := Table{Name: "holiday_dates", Columns: []string{"holiday_date"}}
	for _, e := range h.Entries() {
		t.Rows = append(t.Rows, []any{e.Date})
	}
	return t
}

func DiscountDates(d *calendar.DiscountPeriods) Table {
	return dates("discount_dates", "discount_date", d.Dates())
}

func Inventory(restocks []inventory.Restock) Table {
	t := Table{
		Name:    "inventory_lookup",
		Columns: []string{"product_id", "restock_date", "prod_lookup_qty"},
	}
	for _, r := range restocks {
		t.Rows = append(t.Rows, []any{r.ProductID, r.Date, r.Quantity})
	}
	return t
}

func RestockDates(d []time.Time) Table {
	return dates("restock_dates", "restock_date", d)
}

func dates(name, column string, d []time.Time) Table {
	t := Table{Name: name, Columns: []string{column}}
	for _, v := range d {
		t.Rows = append(t.Rows, []any{v})
	}
	return t
}
