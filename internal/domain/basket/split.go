package basket

import (
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
)

// Splitter partitions a basket size into per-line quantities.
type Splitter struct {
	rnd *randx.Rand
	t   tuning.Split
}

// NewSplitter returns a Splitter drawing from rnd.
func NewSplitter(rnd *randx.Rand, t tuning.Split) *Splitter {
	return &Splitter{rnd: rnd, t: t}
}

// Split returns positive parts summing exactly to total, each at least
// minPart. A per-call cap policy limits how large a single part may be: half
// the total, a third of it, or the whole total. A part that would leave a
// remainder below minPart absorbs that remainder.
//
// Totals below minPart yield a single part equal to total; non-positive
// totals yield nil.
func (s *Splitter) Split(total, minPart int) []int {
	if total <= 0 {
		return nil
	}
	if minPart < 1 {
		minPart = 1
	}
	if total <= minPart {
		return []int{total}
	}

	capValue := total
	switch p := s.rnd.Float64(); {
	case p < s.t.HalfCapRate:
		capValue = total / 2
	case p < s.t.HalfCapRate+s.t.ThirdCapRate:
		capValue = total / 3
	}
	capValue = max(capValue, minPart)

	var parts []int
	remaining := total
	for remaining > 0 {
		hi := min(capValue, remaining)

		var v int
		if hi <= minPart {
			v = minPart
		} else {
			v = s.rnd.Between(minPart, hi+1)
		}
		if rest := remaining - v; rest < minPart {
			v = remaining
		}

		parts = append(parts, v)
		remaining -= v
	}
	return parts
}
