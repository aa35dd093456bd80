// Package product defines the product catalog and its per-store indexes.
package product

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item stocked by exactly one store.
type Product struct {
	ID            string
	StoreID       string
	Category      string
	Subcategory   string
	Name          string
	Variant       string
	CostPrice     decimal.Decimal
	ShelfLifeDays int
	Rating        float64
}

type storeCategory struct {
	storeID  string
	category string
}

// Catalog is an immutable product catalog indexed by store and category so
// that per-visit lookups are O(1).
type Catalog struct {
	products   []Product
	byCategory map[storeCategory][]Product
	categories map[string][]string
}

// NewCatalog indexes products. The order of products within each
// store/category bucket follows the input order.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products:   products,
		byCategory: make(map[storeCategory][]Product),
		categories: make(map[string][]string),
	}
	for _, p := range products {
		key := storeCategory{storeID: p.StoreID, category: p.Category}
		if _, ok := c.byCategory[key]; !ok {
			c.categories[p.StoreID] = append(c.categories[p.StoreID], p.Category)
		}
		c.byCategory[key] = append(c.byCategory[key], p)
	}
	return c
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []Product {
	return c.products
}

// InCategory returns the products a store stocks in category, or nil.
func (c *Catalog) InCategory(storeID, category string) []Product {
	return c.byCategory[storeCategory{storeID: storeID, category: category}]
}

// Categories returns the categories a store stocks, in first-seen order.
func (c *Catalog) Categories(storeID string) []string {
	return c.categories[storeID]
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
