package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	products := []Product{
		{ID: "P1", StoreID: "S1", Category: CategoryBakery, CostPrice: decimal.NewFromInt(2)},
		{ID: "P2", StoreID: "S1", Category: CategoryCandy, CostPrice: decimal.NewFromInt(1)},
		{ID: "P3", StoreID: "S1", Category: CategoryBakery, CostPrice: decimal.NewFromInt(3)},
		{ID: "P4", StoreID: "S2", Category: CategoryCandy, CostPrice: decimal.NewFromInt(1)},
	}
	c := NewCatalog(products)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, products, c.Products())
	assert.Equal(t, []string{CategoryBakery, CategoryCandy}, c.Categories("S1"))
	assert.Equal(t, []string{CategoryCandy}, c.Categories("S2"))

	bakery := c.InCategory("S1", CategoryBakery)
	if assert.Len(t, bakery, 2) {
		assert.Equal(t, "P1", bakery[0].ID)
		assert.Equal(t, "P3", bakery[1].ID)
	}
	assert.Nil(t, c.InCategory("S2", CategoryBakery))
	assert.Nil(t, c.Categories("S3"))
}
