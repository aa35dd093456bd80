package order

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/store"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/randx"
)

// TrafficEstimator returns the number of visits to a store on a day.
type TrafficEstimator interface {
	Estimate(day calendar.Day, s store.Store) int
}

// BasketSizer returns the number of items one customer buys.
type BasketSizer interface {
	Size(day calendar.Day, tier store.Tier, member bool) int
}

// QuantitySplitter partitions a basket size into per-line quantities.
type QuantitySplitter interface {
	Split(total, minPart int) []int
}

// CategorySelector picks the category of each basket line.
type CategorySelector interface {
	Select(n, age int, holiday string, season calendar.Season) []string
}

// Pricer computes the unit price of a product on a day.
type Pricer interface {
	Quote(cost decimal.Decimal, terms pricing.Terms, day calendar.Day, member bool) decimal.Decimal
}

// TermsLookup returns the markup and discounts of a product.
type TermsLookup interface {
	Lookup(productID string) (pricing.Terms, error)
}

// CustomerPool yields the customer of the next visit.
type CustomerPool interface {
	Next() string
}

// Config holds the run window and the daily operating hours.
type Config struct {
	// Start and End bound the half-open simulation window. Both are
	// truncated to midnight UTC.
	Start time.Time
	End   time.Time
	// OpenHour and CloseHour bound visit timestamps to [open, close).
	OpenHour  int
	CloseHour int
}

// Deps are the collaborators of an Assembler. Logger, Meter, Tracer and
// OnDay are optional.
type Deps struct {
	Rand      *randx.Rand
	Resolver  *calendar.Resolver
	Stores    []store.Store
	Catalog   *product.Catalog
	Staff     *staff.Roster
	Customers *customer.Directory
	Pool      CustomerPool
	Terms     TermsLookup

	Traffic  TrafficEstimator
	Sizer    BasketSizer
	Splitter QuantitySplitter
	Selector CategorySelector
	Pricer   Pricer

	Sink Sink

	Logger *zap.Logger
	Meter  metric.Meter
	Tracer trace.Tracer
	// OnDay is called after every simulated day with the running totals.
	OnDay func(day time.Time, total Stats)
}

// missing returns the name of the first nil required collaborator.
func (d *Deps) missing() string {
	for _, c := range []struct {
		name   string
		absent bool
	}{
		{"rand", d.Rand == nil},
		{"resolver", d.Resolver == nil},
		{"catalog", d.Catalog == nil},
		{"staff", d.Staff == nil},
		{"customers", d.Customers == nil},
		{"terms", d.Terms == nil},
		{"traffic", d.Traffic == nil},
		{"sizer", d.Sizer == nil},
		{"splitter", d.Splitter == nil},
		{"selector", d.Selector == nil},
		{"pricer", d.Pricer == nil},
	} {
		if c.absent {
			return c.name
		}
	}
	return ""
}

// Assembler drives the day-by-day simulation and streams order lines to a
// sink. It is single-threaded and runs once.
type Assembler struct {
	cfg  Config
	deps Deps
	lg   *zap.Logger

	cashiers map[string][]string

	ordersCounter metric.Int64Counter
	linesCounter  metric.Int64Counter
	daysCounter   metric.Int64Counter
	tracer        trace.Tracer

	nextLine  int64
	nextOrder int64
	buf       []Line
}

// NewAssembler validates the configuration and reference data. Every error
// it returns is a configuration error.
func NewAssembler(cfg Config, deps Deps) (*Assembler, error) {
	cfg.Start = calendar.Truncate(cfg.Start)
	cfg.End = calendar.Truncate(cfg.End)
	if !cfg.End.After(cfg.Start) {
		return nil, ErrInvalidWindow
	}
	if cfg.CloseHour <= cfg.OpenHour || cfg.OpenHour < 0 || cfg.CloseHour > 24 {
		return nil, ErrInvalidHours
	}
	if len(deps.Stores) == 0 {
		return nil, store.ErrEmptyRoster
	}
	if deps.Pool == nil {
		return nil, customer.ErrEmptyPool
	}
	if deps.Sink == nil {
		return nil, ErrNoSink
	}
	if name := deps.missing(); name != "" {
		return nil, errors.Wrap(ErrMissingDependency, name)
	}

	cashiers := make(map[string][]string, len(deps.Stores))
	for _, s := range deps.Stores {
		ids := deps.Staff.Cashiers(s.ID)
		if len(ids) == 0 {
			return nil, &NoCashierError{StoreID: s.ID}
		}
		cashiers[s.ID] = ids
	}

	lg := deps.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	meter := deps.Meter
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("order")
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer("order")
	}

	a := &Assembler{
		cfg:      cfg,
		deps:     deps,
		lg:       lg,
		cashiers: cashiers,
		tracer:   tracer,
	}

	var err error
	if a.ordersCounter, err = meter.Int64Counter("starmart.orders",
		metric.WithDescription("Generated orders"),
	); err != nil {
		return nil, errors.Wrap(err, "orders counter")
	}
	if a.linesCounter, err = meter.Int64Counter("starmart.lines",
		metric.WithDescription("Generated order lines"),
	); err != nil {
		return nil, errors.Wrap(err, "lines counter")
	}
	if a.daysCounter, err = meter.Int64Counter("starmart.days",
		metric.WithDescription("Simulated days"),
	); err != nil {
		return nil, errors.Wrap(err, "days counter")
	}

	return a, nil
}

// Run simulates every day of the window and flushes the sink. Line and order
// ids start at 1 and increase without gaps. Lines are emitted day-major,
// store-minor, timestamp ascending within a store.
func (a *Assembler) Run(ctx context.Context) (Stats, error) {
	a.nextLine, a.nextOrder = 1, 1

	var total Stats
	month := time.Month(0)
	for day := a.cfg.Start; day.Before(a.cfg.End); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if day.Month() != month {
			month = day.Month()
			a.lg.Info("Simulating month",
				zap.String("month", day.Format("2006-01")),
				zap.Int64("orders", total.Orders),
				zap.Int64("lines", total.Lines),
			)
		}

		st, err := a.runDay(ctx, day)
		total.Days++
		total.Orders += st.Orders
		total.Lines += st.Lines
		if err != nil {
			return total, errors.Wrapf(err, "simulate %s", day.Format(time.DateOnly))
		}

		a.daysCounter.Add(ctx, 1)
		a.lg.Debug("Day simulated",
			zap.String("date", day.Format(time.DateOnly)),
			zap.Int64("orders", st.Orders),
			zap.Int64("lines", st.Lines),
		)
		if a.deps.OnDay != nil {
			a.deps.OnDay(day, total)
		}
	}

	if err := a.deps.Sink.Flush(ctx); err != nil {
		return total, errors.Wrap(err, "flush sink")
	}
	return total, nil
}

func (a *Assembler) runDay(ctx context.Context, date time.Time) (Stats, error) {
	ctx, span := a.tracer.Start(ctx, "order.Day",
		trace.WithAttributes(attribute.String("date", date.Format(time.DateOnly))),
	)
	defer span.End()

	day := a.deps.Resolver.Resolve(date)
	span.SetAttributes(
		attribute.String("holiday", day.Holiday),
		attribute.Bool("discounted", day.Discounted),
	)

	var st Stats
	for _, s := range a.deps.Stores {
		n := a.deps.Traffic.Estimate(day, s)
		if n <= 0 {
			continue
		}
		for _, at := range a.visitTimes(date, n) {
			lines, err := a.visit(ctx, day, s, at)
			if err != nil {
				span.RecordError(err)
				return st, err
			}
			if lines == 0 {
				continue
			}
			st.Orders++
			st.Lines += int64(lines)
		}
	}

	a.ordersCounter.Add(ctx, st.Orders)
	a.linesCounter.Add(ctx, st.Lines)
	return st, nil
}

// visitTimes returns n sorted timestamps with second resolution within the
// operating window of date.
func (a *Assembler) visitTimes(date time.Time, n int) []time.Time {
	lo, hi := a.cfg.OpenHour*3600, a.cfg.CloseHour*3600
	secs := make([]int, n)
	for i := range secs {
		secs[i] = a.deps.Rand.Between(lo, hi)
	}
	slices.Sort(secs)

	out := make([]time.Time, n)
	for i, sec := range secs {
		out[i] = date.Add(time.Duration(sec) * time.Second)
	}
	return out
}

// visit emits the lines of one customer visit and returns how many were
// written. A visit whose category selection came back empty writes nothing
// and consumes no order id.
func (a *Assembler) visit(ctx context.Context, day calendar.Day, s store.Store, at time.Time) (int, error) {
	d := a.deps

	c, err := d.Customers.Get(d.Pool.Next())
	if err != nil {
		return 0, err
	}
	cashier := randx.Pick(d.Rand, a.cashiers[s.ID])

	size := d.Sizer.Size(day, s.Tier, c.Member)
	parts := d.Splitter.Split(size, 1)
	categories := d.Selector.Select(len(parts), c.Age, day.Holiday, day.Season)

	lines := a.buf[:0]
	for i, category := range categories {
		products := d.Catalog.InCategory(s.ID, category)
		if len(products) == 0 {
			return 0, &CategoryNotStockedError{StoreID: s.ID, Category: category}
		}
		p := randx.Pick(d.Rand, products)

		terms, err := d.Terms.Lookup(p.ID)
		if err != nil {
			return 0, err
		}

		lines = append(lines, Line{
			ProductID:  p.ID,
			CustomerID: c.ID,
			StoreID:    s.ID,
			CashierID:  cashier,
			OrderedAt:  at,
			Quantity:   parts[i],
			FinalPrice: d.Pricer.Quote(p.CostPrice, terms, day, c.Member),
		})
	}
	a.buf = lines
	if len(lines) == 0 {
		return 0, nil
	}

	orderID := a.nextOrder
	a.nextOrder++
	for i := range lines {
		lines[i].OrderID = orderID
		lines[i].LineID = a.nextLine
		a.nextLine++
	}

	if err := d.Sink.Write(ctx, lines); err != nil {
		return 0, errors.Wrapf(err, "write order %d", orderID)
	}
	return len(lines), nil
}
