package customer

import (
	"github.com/xenking/starmart-datagen/internal/randx"
)

// VisitRange is the half-open range [Min, Max) of pool entries a customer of
// a given class receives.
type VisitRange struct {
	Min int
	Max int
}

// VisitPool is a shuffled weighted multiset of customer ids consumed
// round-robin. Frequent customers appear many times, one-time customers once.
type VisitPool struct {
	ids    []string
	cursor int
}

// NewVisitPool builds and shuffles a pool. Customers whose class has no range
// get exactly one entry.
func NewVisitPool(rnd *randx.Rand, customers []Customer, visits map[Recurrence]VisitRange) (*VisitPool, error) {
	var ids []string
	for _, c := range customers {
		n := 1
		if vr, ok := visits[c.Recurrence]; ok {
			n = rnd.Between(vr.Min, vr.Max)
		}
		for range n {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrEmptyPool
	}
	randx.Shuffle(rnd, ids)
	return &VisitPool{ids: ids}, nil
}

// NewVisitPoolFromIDs returns a pool over ids in the given order.
func NewVisitPoolFromIDs(ids []string) (*VisitPool, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyPool
	}
	return &VisitPool{ids: ids}, nil
}

// Next returns the next customer id, wrapping to the start when exhausted.
func (p *VisitPool) Next() string {
	id := p.ids[p.cursor]
	p.cursor++
	if p.cursor >= len(p.ids) {
		p.cursor = 0
	}
	return id
}

// Len returns the number of pool entries.
func (p *VisitPool) Len() int {
	return len(p.ids)
}
