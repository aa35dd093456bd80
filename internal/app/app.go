// Package app wires configuration, master data, the order stream and the
// exporters into one generator run.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/starmart-datagen/internal/domain/basket"
	"github.com/xenking/starmart-datagen/internal/domain/calendar"
	"github.com/xenking/starmart-datagen/internal/domain/category"
	"github.com/xenking/starmart-datagen/internal/domain/customer"
	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/domain/product"
	"github.com/xenking/starmart-datagen/internal/domain/staff"
	"github.com/xenking/starmart-datagen/internal/domain/traffic"
	"github.com/xenking/starmart-datagen/internal/export"
	"github.com/xenking/starmart-datagen/internal/inventory"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/randx"
	"github.com/xenking/starmart-datagen/internal/tuning"
	"github.com/xenking/starmart-datagen/pkg/health"
	"github.com/xenking/starmart-datagen/pkg/httpmiddleware"
)

const (
	instrumentation = "github.com/xenking/starmart-datagen"
	activityFPR     = 0.001
	maxGoroutines   = 10_000
)

// relay forwards to a sink attached once the run has been validated, so
// configuration errors surface before any output exists.
type relay struct {
	order.Sink
}

// observer feeds the active-customer filter and the liveness progress.
func observer(activity *customer.Activity, progress *health.Progress) order.Sink {
	return order.SinkFunc(func(_ context.Context, lines []order.Line) error {
		if len(lines) == 0 {
			return nil
		}
		activity.Observe(lines[0].CustomerID)
		progress.Advance(int64(len(lines)), time.Now())
		return nil
	})
}

// Tuning applies the configured overrides to the default constants.
func (c *Config) Tuning() tuning.Tuning {
	t := tuning.Default()
	t.Traffic.BaseCustomers = c.Traffic.BaseCustomers
	t.Basket.BaseMean = c.Basket.BaseMean
	t.Basket.HolidayWeight = c.Basket.HolidayWeight
	t.Basket.DiscountWeight = c.Basket.DiscountWeight
	return t
}

// Run generates the dataset described by cfg, reporting through the
// telemetry of m.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return Generate(ctx, lg, cfg, m.MeterProvider(), m.TracerProvider())
}

// Generate generates the dataset described by cfg.
func Generate(ctx context.Context, lg *zap.Logger, cfg *Config, mp metric.MeterProvider, tp trace.TracerProvider) error {
	return generate(ctx, lg, cfg, mp, tp, openOutput)
}

func generate(ctx context.Context, lg *zap.Logger, cfg *Config, mp metric.MeterProvider, tp trace.TracerProvider, open opener) error {
	runID := uuid.New()
	lg = lg.With(zap.Stringer("run_id", runID))

	start, end, err := cfg.Window()
	if err != nil {
		return err
	}
	selection, err := pricing.ParseDiscountSelection(cfg.Pricing.DiscountSelection)
	if err != nil {
		return err
	}
	lg.Info("Initializing",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Uint64("seed", cfg.Seed),
		zap.String("format", cfg.Output.Format),
	)

	ref, err := BuildReference(cfg, start, end)
	if err != nil {
		return errors.Wrap(err, "build reference data")
	}
	lg.Info("Reference data ready",
		zap.Int("stores", len(ref.Stores)),
		zap.Int("products", len(ref.Products)),
		zap.Int("employees", len(ref.Employees)),
		zap.Int("customers", len(ref.Customers)),
		zap.Int("vendors", len(ref.Vendors)),
		zap.Int("discount_days", ref.Discounts.Len()),
	)

	t := cfg.Tuning()
	rnd := randx.New(cfg.Seed)
	pool, err := customer.NewVisitPool(rnd, ref.Customers, t.Visits)
	if err != nil {
		return errors.Wrap(err, "build visit pool")
	}

	progress := health.NewProgress(time.Now())
	activity := customer.NewActivity(uint(len(ref.Customers)), activityFPR)
	tracker := inventory.NewTracker(start, inventory.DefaultWaveDays)
	primary := &relay{}

	asm, err := order.NewAssembler(order.Config{
		Start:     start,
		End:       end,
		OpenHour:  t.OpenHour,
		CloseHour: t.CloseHour,
	}, order.Deps{
		Rand:      rnd,
		Resolver:  calendar.NewResolver(ref.Holidays, ref.Discounts),
		Stores:    ref.Stores,
		Catalog:   product.NewCatalog(ref.Products),
		Staff:     staff.NewRoster(ref.Employees),
		Customers: customer.NewDirectory(ref.Customers),
		Pool:      pool,
		Terms:     pricing.NewTable(ref.Markup),
		Traffic:   traffic.NewEstimator(rnd, t.Traffic),
		Sizer:     basket.NewSizer(rnd, t.Basket),
		Splitter:  basket.NewSplitter(rnd, t.Split),
		Selector:  category.NewSelector(rnd, t.Category),
		Pricer:    pricing.NewEngine(t.Pricing.MembershipDiscount, selection),
		Sink:      order.MultiSink{primary, tracker, observer(activity, progress)},
		Logger:    lg.Named("order"),
		Meter:     mp.Meter(instrumentation),
		Tracer:    tp.Tracer(instrumentation),
	})
	if err != nil {
		return errors.Wrap(err, "configure order stream")
	}

	out, err := open(ctx, lg, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.close(); err != nil {
			lg.Error("Close output", zap.Error(err))
		}
	}()
	primary.Sink = out.orders

	if cfg.HealthAddr != "" {
		stop := serveHealth(ctx, lg, cfg, progress, out.ready)
		defer stop()
	}

	stats, err := asm.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "generate orders")
	}
	if err := out.finishOrders(); err != nil {
		return errors.Wrap(err, "close orders")
	}
	lg.Info("Orders generated",
		zap.Int("days", stats.Days),
		zap.Int64("orders", stats.Orders),
		zap.Int64("lines", stats.Lines),
	)

	restocks := tracker.Restocks(rnd, inventory.DefaultBands)
	active := activity.Active(ref.Customers)
	tables := []export.Table{
		export.Stores(ref.Stores),
		export.Employees(ref.Employees),
		export.Products(ref.Products),
		export.Markup(ref.Markup),
		export.Customers(active),
		export.Vendors(ref.Vendors),
		export.VendorItems(ref.VendorItems),
		export.HolidayLookup(ref.Holidays),
		export.HolidayDates(ref.Holidays),
		export.DiscountDates(ref.Discounts),
		export.Inventory(restocks),
		export.RestockDates(inventory.RestockDates(restocks)),
	}
	if err := writeTables(ctx, out.tables, tables); err != nil {
		return err
	}

	manifest := &Manifest{
		RunID:         runID,
		Seed:          cfg.Seed,
		ReferenceSeed: cfg.ReferenceSeed,
		DiscountSeed:  cfg.Discounts.Seed,
		Start:         start,
		End:           end,
		Format:        cfg.Output.Format,
		GeneratedAt:   time.Now(),
		Stats:         stats,
	}
	for _, tbl := range tables {
		manifest.Tables = append(manifest.Tables, TableCount{Name: tbl.Name, Rows: len(tbl.Rows)})
	}
	manifest.Tables = append(manifest.Tables, TableCount{Name: export.Orders, Rows: int(stats.Lines)})

	path, err := WriteManifest(cfg.Output.Dir, manifest)
	if err != nil {
		return errors.Wrap(err, "write manifest")
	}
	lg.Info("Done",
		zap.String("manifest", path),
		zap.Int("active_customers", len(active)),
		zap.Int("restock_rows", len(restocks)),
	)
	return nil
}

// writeTables exports independent tables concurrently.
func writeTables(ctx context.Context, w export.TableWriter, tables []export.Table) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, tbl := range tables {
		g.Go(func() error {
			if err := w.WriteTable(ctx, tbl); err != nil {
				return errors.Wrapf(err, "export %s", tbl.Name)
			}
			return nil
		})
	}
	return g.Wait()
}

// newProbes registers the liveness checks of a run and, when the output
// reports it, a readiness check.
func newProbes(cfg *Config, progress *health.Progress, ready health.CheckFunc) *health.Health {
	h := health.New()
	h.AddLivenessCheck("stream", time.Second, health.StallCheck(progress, cfg.HealthStall, nil))
	h.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(maxGoroutines))
	if ready != nil {
		h.AddReadinessCheck("output", 5*time.Second, ready)
	}
	return h
}

// serveHealth starts the probe server and returns its shutdown function.
func serveHealth(ctx context.Context, lg *zap.Logger, cfg *Config, progress *health.Progress, ready health.CheckFunc) func() {
	h := newProbes(cfg, progress, ready)
	h.Start(ctx, 10*time.Second)
	h.SetReady(true)

	server := &http.Server{
		Addr:              cfg.HealthAddr,
		Handler:           httpmiddleware.Wrap(h.Handler(), httpmiddleware.Recovery(lg), httpmiddleware.Access(lg.Named("probe"))),
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
	}
	go func() {
		lg.Info("Health server listening", zap.String("addr", cfg.HealthAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("Health server", zap.Error(err))
		}
	}()

	return func() {
		h.SetReady(false)
		h.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Health server shutdown", zap.Error(err))
		}
	}
}
