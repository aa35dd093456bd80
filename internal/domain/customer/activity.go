package customer

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// Activity remembers which customers placed at least one order. It is backed
// by a bloom filter so memory stays flat regardless of stream length; a small
// fraction of inactive customers may be reported as seen.
type Activity struct {
	filter *bloom.BloomFilter
}

// NewActivity sizes the filter for the expected number of distinct customers.
func NewActivity(expected uint, fpr float64) *Activity {
	if expected == 0 {
		expected = 1
	}
	return &Activity{filter: bloom.NewWithEstimates(expected, fpr)}
}

// Observe records that a customer ordered.
func (a *Activity) Observe(id string) {
	a.filter.AddString(id)
}

// Seen reports whether a customer has probably ordered.
func (a *Activity) Seen(id string) bool {
	return a.filter.TestString(id)
}

// Active returns the customers that were probably observed, preserving order.
func (a *Activity) Active(customers []Customer) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if a.Seen(c.ID) {
			out = append(out, c)
		}
	}
	return out
}
