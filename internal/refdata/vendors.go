package refdata

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/randx"
)

var vendorSuffixes = []string{"Supply Co.", "Distributors", "Wholesale", "Trading", "Foods Inc.", "Partners", "Brands LLC"}

// Vendor supplies every product of one subcategory.
type Vendor struct {
	ID          string
	Name        string
	Subcategory string
	DeliveryFee int
}

// VendorItem is the price a vendor charges for one product.
type VendorItem struct {
	ID          string
	VendorID    string
	ProductID   string
	PerItemCost decimal.Decimal
}

// Vendors returns three to five vendors per subcategory and their per-item
// cost for each product of that subcategory, 0.10 to 0.30 below the store's
// cost price.
func (g *Generator) Vendors(products []product.Product) ([]Vendor, []VendorItem) {
	var subs []string
	bySub := make(map[string][]product.Product)
	for _, p := range products {
		if _, ok := bySub[p.Subcategory]; !ok {
			subs = append(subs, p.Subcategory)
		}
		bySub[p.Subcategory] = append(bySub[p.Subcategory], p)
	}
	skus := uniqueSKUs(subs)

	var (
		vendors []Vendor
		items   []VendorItem
	)
	next := 1
	for _, sub := range subs {
		n := g.rnd.Between(3, 6)
		for i := range n {
			v := Vendor{
				ID:          fmt.Sprintf("STRMRT_VNDR_%s_%d", skus[sub], next),
				Name:        fmt.Sprintf("%s %s %d", sub, vendorSuffixes[(next+i)%len(vendorSuffixes)], next),
				Subcategory: sub,
				DeliveryFee: randx.Pick(g.rnd, deliveryFees),
			}
			vendors = append(vendors, v)
			next++
		}
	}

	for _, v := range vendors {
		for _, p := range bySub[v.Subcategory] {
			cost := p.CostPrice.Sub(decimal.NewFromFloat(g.rnd.Uniform(0.1, 0.3))).Round(2)
			if !cost.IsPositive() {
				cost = decimal.New(1, -2)
			}
			items = append(items, VendorItem{
				ID:          fmt.Sprintf("STRMRT_VNDR_%d", len(items)+1),
				VendorID:    v.ID,
				ProductID:   p.ID,
				PerItemCost: cost,
			})
		}
	}
	return vendors, items
}

// abbreviate builds an upper-case SKU stem of at most four letters: the
// first letter followed by consonants, after trimming plurals.
func abbreviate(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s := b.String()
	switch {
	case strings.HasSuffix(s, "ies"):
		s = s[:len(s)-3] + "ys"
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		s = s[:len(s)-1]
	}
	if s == "" {
		return ""
	}

	out := []byte{s[0]}
	for i := 1; i < len(s) && len(out) < 4; i++ {
		if !strings.ContainsRune("aeiou", rune(s[i])) {
			out = append(out, s[i])
		}
	}
	return strings.ToUpper(string(out))
}

// uniqueSKUs abbreviates names, numbering repeated stems from 2.
func uniqueSKUs(names []string) map[string]string {
	used := make(map[string]int)
	out := make(map[string]string, len(names))
	for _, name := range names {
		abbr := abbreviate(name)
		used[abbr]++
		if n := used[abbr]; n > 1 {
			abbr = fmt.Sprintf("%s%d", abbr, n)
		}
		out[name] = abbr
	}
	return out
}
