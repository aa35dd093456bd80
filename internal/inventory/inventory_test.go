package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/randx"
)

var start = calendar.Date(2024, time.January, 1)

func line(productID string, day, hour, qty int) order.Line {
	return order.Line{
		ProductID: productID,
		OrderedAt: start.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour),
		Quantity:  qty,
	}
}

func TestTracker_AggregatesPerWave(t *testing.T) {
	tr := NewTracker(start, 3)
	require.NoError(t, tr.Write(context.Background(), []order.Line{
		line("A", 0, 8, 2),
		line("A", 2, 21, 3), // same wave
		line("A", 3, 7, 5),  // next wave
		line("B", 1, 12, 1),
	}))
	require.NoError(t, tr.Flush(context.Background()))

	restocks := tr.Restocks(randx.New(1), []Band{{Min: 0, Max: 1, Weight: 1}})
	assert.Equal(t, []Restock{
		{ProductID: "A", Date: start, Quantity: 5},
		{ProductID: "B", Date: start, Quantity: 1},
		{ProductID: "A", Date: start.AddDate(0, 0, 3), Quantity: 5},
	}, restocks)

	assert.Equal(t, []time.Time{start, start.AddDate(0, 0, 3)}, RestockDates(restocks))
}

func TestTracker_Increments(t *testing.T) {
	tr := NewTracker(start, 0)
	var lines []order.Line
	for d := range 300 {
		lines = append(lines, line("P", d, 9, 1))
	}
	require.NoError(t, tr.Write(context.Background(), lines))

	restocks := tr.Restocks(randx.New(42), DefaultBands)
	require.Len(t, restocks, 100)

	low := 0
	for _, r := range restocks {
		inc := r.Quantity - DefaultWaveDays
		assert.GreaterOrEqual(t, inc, int64(0))
		assert.Less(t, inc, int64(101))
		if inc < 26 {
			low++
		}
	}
	assert.InDelta(t, 50, low, 20)
}

func TestTracker_WaveStart(t *testing.T) {
	tr := NewTracker(start.Add(5*time.Hour), 3)
	assert.Equal(t, start, tr.WaveStart(0))
	assert.Equal(t, calendar.Date(2024, time.January, 7), tr.WaveStart(2))
}
