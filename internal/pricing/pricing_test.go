package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEngine_Price(t *testing.T) {
	e := NewEngine(0.15, SelectLegacy)

	tests := []struct {
		name     string
		cost     string
		markup   string
		discount string
		member   bool
		want     string
	}{
		{"markup only", "100", "0.5", "0", false, "150"},
		{"discount and member", "100", "0.5", "0.2", true, "119.00"},
		{"member without discount", "10", "1", "0", true, "17"},
		{"rounds to cents", "3.33", "0.333", "0.1", false, "4.33"},
		{"full discount leaves cost", "7.49", "2", "1", false, "7.49"},
		{"zero cost", "0", "2", "0.3", true, "0"},
		{"negative clamps to zero", "-5", "0.5", "0", false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Price(d(tt.cost), d(tt.markup), d(tt.discount), tt.member)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEngine_Price_MemberFormula(t *testing.T) {
	e := NewEngine(0.15, SelectLegacy)
	// round(100 * (1 + 0.5*0.8) * 0.85, 2) == round(119 * 0.85, 2)
	got := e.Price(d("100"), d("0.5"), d("0.2"), true)
	assert.Equal(t, "119", got.String())
}

func TestEngine_Discount(t *testing.T) {
	terms := Terms{
		Markup:          d("1"),
		NormalDiscount:  d("0.1"),
		HolidayDiscount: d("0.4"),
	}
	holiday := calendar.Day{Holiday: calendar.Christmas, Discounted: true, HighTraffic: true}
	promo := calendar.Day{Holiday: calendar.NormalDay, Discounted: true}
	regular := calendar.Day{Holiday: calendar.NormalDay}

	tests := []struct {
		name      string
		selection DiscountSelection
		day       calendar.Day
		want      string
	}{
		{"legacy holiday", SelectLegacy, holiday, "0.4"},
		{"legacy promo day uses holiday discount", SelectLegacy, promo, "0.4"},
		{"legacy regular", SelectLegacy, regular, "0"},
		{"by day type holiday", SelectByDayType, holiday, "0.4"},
		{"by day type promo day", SelectByDayType, promo, "0.1"},
		{"by day type regular", SelectByDayType, regular, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(0.15, tt.selection)
			assert.True(t, d(tt.want).Equal(e.Discount(terms, tt.day)))
		})
	}
}

func TestEngine_Quote(t *testing.T) {
	e := NewEngine(0.15, SelectByDayType)
	terms := Terms{Markup: d("0.5"), NormalDiscount: d("0.2"), HolidayDiscount: d("0.5")}
	promo := calendar.Day{Holiday: calendar.NormalDay, Discounted: true}

	assert.Equal(t, "119", e.Quote(d("100"), terms, promo, true).String())
}

func TestParseDiscountSelection(t *testing.T) {
	sel, err := ParseDiscountSelection("")
	require.NoError(t, err)
	assert.Equal(t, SelectLegacy, sel)

	sel, err = ParseDiscountSelection("by-day-type")
	require.NoError(t, err)
	assert.Equal(t, SelectByDayType, sel)

	_, err = ParseDiscountSelection("Normal day")
	require.ErrorIs(t, err, ErrUnknownSelection)
}

func TestTable_Lookup(t *testing.T) {
	table := NewTable([]Entry{
		{ProductID: "B", Terms: Terms{Markup: d("0.5")}},
		{ProductID: "A", Terms: Terms{Markup: d("1.5")}},
	})

	terms, err := table.Lookup("A")
	require.NoError(t, err)
	assert.True(t, d("1.5").Equal(terms.Markup))

	_, err = table.Lookup("missing")
	var notFound *MarkupNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ProductID)

	assert.Equal(t, 2, table.Len())
}
