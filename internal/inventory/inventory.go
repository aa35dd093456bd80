// Package inventory derives the restock lookup table from the order stream.
//
// Sold quantities are summed per product over fixed restock waves counted
// from the simulation start. After the run every (product, wave) row is
// topped up with a random safety increment, which yields the stock level the
// store should have held at the start of that wave.
package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/randx"
)

// DefaultWaveDays is the length of a restock wave.
const DefaultWaveDays = 3

// Band is a half-open increment range [Min, Max) drawn with Weight.
type Band struct {
	Min, Max int
	Weight   float64
}

// DefaultBands are the safety increment bands.
var DefaultBands = []Band{
	{Min: 0, Max: 26, Weight: 0.50},
	{Min: 26, Max: 51, Weight: 0.25},
	{Min: 51, Max: 76, Weight: 0.15},
	{Min: 76, Max: 101, Weight: 0.10},
}

// Restock is one row of the lookup table.
type Restock struct {
	ProductID string
	Date      time.Time
	Quantity  int64
}

type key struct {
	productID string
	wave      int
}

var _ order.Sink = (*Tracker)(nil)

// Tracker aggregates sold quantities per product and wave. It implements
// order.Sink so it can sit next to the primary sink.
type Tracker struct {
	start    time.Time
	waveDays int
	sold     map[key]int64
}

// NewTracker returns a Tracker with waves of waveDays counted from start.
// Non-positive waveDays uses DefaultWaveDays.
func NewTracker(start time.Time, waveDays int) *Tracker {
	if waveDays <= 0 {
		waveDays = DefaultWaveDays
	}
	return &Tracker{
		start:    calendar.Truncate(start),
		waveDays: waveDays,
		sold:     make(map[key]int64),
	}
}

// Write adds the quantities of lines.
func (t *Tracker) Write(_ context.Context, lines []order.Line) error {
	for _, l := range lines {
		t.sold[key{productID: l.ProductID, wave: t.wave(l.OrderedAt)}] += int64(l.Quantity)
	}
	return nil
}

// Flush is a no-op.
func (t *Tracker) Flush(context.Context) error { return nil }

func (t *Tracker) wave(at time.Time) int {
	days := int(calendar.Truncate(at).Sub(t.start) / (24 * time.Hour))
	return days / t.waveDays
}

// WaveStart returns the first day of wave n.
func (t *Tracker) WaveStart(n int) time.Time {
	return t.start.AddDate(0, 0, n*t.waveDays)
}

// Restocks returns the lookup table ordered by date then product, with every
// quantity raised by an increment drawn from bands.
func (t *Tracker) Restocks(rnd *randx.Rand, bands []Band) []Restock {
	out := make([]Restock, 0, len(t.sold))
	for k, qty := range t.sold {
		out = append(out, Restock{ProductID: k.productID, Date: t.WaveStart(k.wave), Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ProductID < out[j].ProductID
	})

	weights := make([]float64, len(bands))
	for i, b := range bands {
		weights[i] = b.Weight
	}
	for i := range out {
		if b := rnd.Weighted(weights); b >= 0 {
			out[i].Quantity += int64(rnd.Between(bands[b].Min, bands[b].Max))
		}
	}
	return out
}

// RestockDates returns the distinct restock dates in ascending order.
func RestockDates(restocks []Restock) []time.Time {
	var out []time.Time
	seen := make(map[time.Time]bool)
	for _, r := range restocks {
		if !seen[r.Date] {
			seen[r.Date] = true
			out = append(out, r.Date)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
