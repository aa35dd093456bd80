//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/starmart-datagen/internal/app"
	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/storage/postgres"
)

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, err := postgres.NewPool(context.Background(), databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func count(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func smallConfig(t *testing.T) *app.Config {
	return &app.Config{
		Start:         "2024-11-27",
		End:           "2024-11-30",
		Seed:          3,
		ReferenceSeed: 3,
		Discounts:     app.DiscountsConfig{Groups: 15, Lengths: []int{1, 3, 7}, Seed: 3},
		Customers:     app.CustomersConfig{Recurring: 50, NonRecurring: 50, OneTime: 50},
		Traffic:       app.TrafficConfig{BaseCustomers: 5},
		Basket:        app.BasketConfig{BaseMean: 15, HolidayWeight: 1.5, DiscountWeight: 1.25},
		Pricing:       app.PricingConfig{DiscountSelection: "legacy"},
		Output:        app.OutputConfig{Format: app.FormatPostgres, Dir: t.TempDir(), FlushEvery: 100},
		DatabaseURL:   databaseURL,
		HealthStall:   time.Minute,
	}
}

func TestGenerate_Postgres(t *testing.T) {
	ctx := context.Background()
	cfg := smallConfig(t)
	require.NoError(t, cfg.Validate())

	generate := func() {
		require.NoError(t, app.Generate(ctx, zap.NewNop(), cfg, metricnoop.NewMeterProvider(), tracenoop.NewTracerProvider()))
	}
	generate()

	pool := connect(t)
	lines := count(t, pool, "orders")
	require.Positive(t, lines)
	assert.EqualValues(t, 20, count(t, pool, "stores"))
	assert.Positive(t, count(t, pool, "products"))
	assert.Positive(t, count(t, pool, "inventory_lookup"))
	assert.Positive(t, count(t, pool, "holiday_lookup"))

	var minID, maxID int64
	require.NoError(t, pool.QueryRow(ctx, "SELECT min(line_order_id), max(line_order_id) FROM orders").Scan(&minID, &maxID))
	assert.EqualValues(t, 1, minID)
	assert.Equal(t, lines, maxID)

	var orphans int64
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT count(*) FROM orders o LEFT JOIN customers c USING (customer_id) WHERE c.customer_id IS NULL",
	).Scan(&orphans))
	assert.Zero(t, orphans, "every ordering customer is exported")

	var price decimal.Decimal
	require.NoError(t, pool.QueryRow(ctx, "SELECT final_price FROM orders WHERE line_order_id = 1").Scan(&price))
	assert.False(t, price.IsNegative())

	// A second run replaces the previous dataset instead of appending to it.
	generate()
	assert.Equal(t, lines, count(t, pool, "orders"))
}

func TestOrderSink_Copy(t *testing.T) {
	ctx := context.Background()
	pool := connect(t)
	require.NoError(t, postgres.RunMigrations(ctx, pool))
	require.NoError(t, postgres.Truncate(ctx, pool, "orders"))

	sink := postgres.NewOrderSink(pool, 2)
	at := time.Date(2024, time.May, 1, 12, 30, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, sink.Write(ctx, []order.Line{{
			LineID: int64(i + 1), OrderID: 1, CustomerID: "C", ProductID: "P", StoreID: "S", CashierID: "E",
			OrderedAt: at, Quantity: 2, FinalPrice: decimal.RequireFromString("10.25"),
		}}))
	}
	require.NoError(t, sink.Flush(ctx))
	assert.EqualValues(t, 5, sink.Copied())
	assert.EqualValues(t, 5, count(t, pool, "orders"))

	var total decimal.Decimal
	require.NoError(t, pool.QueryRow(ctx, "SELECT sum(final_price * quantity) FROM orders").Scan(&total))
	assert.True(t, decimal.RequireFromString("102.50").Equal(total))
}
