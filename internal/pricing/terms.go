package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Terms are the markup and discount percentages of one product. A discount
// is zero when the product's subcategory is not eligible for it.
type Terms struct {
	Markup          decimal.Decimal
	NormalDiscount  decimal.Decimal
	HolidayDiscount decimal.Decimal
}

// MarkupNotFoundError indicates a product has no entry in the terms table.
type MarkupNotFoundError struct {
	ProductID string
}

func (e *MarkupNotFoundError) Error() string {
	return fmt.Sprintf("markup for product %s not found", e.ProductID)
}

// Entry is one row of a Table.
type Entry struct {
	ProductID string
	Terms
}

// Table indexes Terms by product id. It is read-only after construction.
type Table struct {
	byProduct map[string]Terms
}

// NewTable builds a Table from entries. Later duplicates win.
func NewTable(entries []Entry) *Table {
	t := &Table{byProduct: make(map[string]Terms, len(entries))}
	for _, e := range entries {
		t.byProduct[e.ProductID] = e.Terms
	}
	return t
}

// Lookup returns the terms of productID or *MarkupNotFoundError.
func (t *Table) Lookup(productID string) (Terms, error) {
	terms, ok := t.byProduct[productID]
	if !ok {
		return Terms{}, &MarkupNotFoundError{ProductID: productID}
	}
	return terms, nil
}

// Len returns the number of products in the table.
func (t *Table) Len() int {
	return len(t.byProduct)
}
