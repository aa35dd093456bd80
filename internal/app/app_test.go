package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
	"github.com/xenking/starmart-datagen/internal/storage/csvfile"
	"github.com/xenking/starmart-datagen/pkg/health"
)

func runGenerate(t *testing.T, cfg *Config) {
	t.Helper()
	err := Generate(context.Background(), zap.NewNop(), cfg, metricnoop.NewMeterProvider(), tracenoop.NewTracerProvider())
	require.NoError(t, err)
}

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestGenerate_CSV(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Dir = t.TempDir()
	runGenerate(t, cfg)

	var lines []order.Line
	_, err := csvfile.StreamOrders(context.Background(), filepath.Join(cfg.Output.Dir, "orders.csv"), func(l order.Line) error {
		lines = append(lines, l)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	customers := make(map[string]bool)
	for i, l := range lines {
		assert.Equal(t, int64(i+1), l.LineID)
		assert.False(t, l.OrderedAt.Before(start))
		assert.True(t, l.OrderedAt.Before(end))
		assert.GreaterOrEqual(t, l.OrderedAt.Hour(), 7)
		assert.Less(t, l.OrderedAt.Hour(), 22)
		assert.Positive(t, l.Quantity)
		assert.False(t, l.FinalPrice.IsNegative())
		customers[l.CustomerID] = true
	}

	// Every ordering customer is exported; the filter may keep a few extra.
	exported := make(map[string]bool)
	for _, rec := range readTable(t, filepath.Join(cfg.Output.Dir, "customers.csv"))[1:] {
		exported[rec[0]] = true
	}
	for id := range customers {
		assert.True(t, exported[id], "customer %s missing from export", id)
	}

	for _, name := range []string{
		"stores", "employees", "products", "markup_discount", "vendors", "vendor_items",
		"holiday_lookup", "holiday_dates", "discount_dates", "inventory_lookup", "restock_dates",
	} {
		assert.FileExists(t, filepath.Join(cfg.Output.Dir, name+".csv"))
	}
	assert.Len(t, readTable(t, filepath.Join(cfg.Output.Dir, "stores.csv")), 21)

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "manifest.json"))
	require.NoError(t, err)
	var manifest struct {
		RunID  string         `json:"run_id"`
		Seed   uint64         `json:"seed"`
		Days   int            `json:"days"`
		Lines  int64          `json:"lines"`
		Tables map[string]int `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))
	_, err = uuid.Parse(manifest.RunID)
	require.NoError(t, err)
	assert.EqualValues(t, 7, manifest.Seed)
	assert.Equal(t, 2, manifest.Days)
	assert.EqualValues(t, len(lines), manifest.Lines)
	assert.Equal(t, len(lines), manifest.Tables["orders"])
	assert.Equal(t, 20, manifest.Tables["stores"])
}

func TestGenerate_Deterministic(t *testing.T) {
	a, b := validConfig(), validConfig()
	a.Output.Dir, b.Output.Dir = t.TempDir(), t.TempDir()
	runGenerate(t, a)
	runGenerate(t, b)

	for _, name := range []string{"orders.csv", "products.csv", "customers.csv", "inventory_lookup.csv"} {
		x, err := os.ReadFile(filepath.Join(a.Output.Dir, name))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b.Output.Dir, name))
		require.NoError(t, err)
		assert.Equal(t, string(x), string(y), name)
	}
}

func TestGenerate_JSONLGzip(t *testing.T) {
	cfg := validConfig()
	cfg.Output = OutputConfig{Format: FormatJSONL, Dir: t.TempDir(), Gzip: true, FlushEvery: 10}
	runGenerate(t, cfg)

	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "orders.jsonl.gz"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "stores.jsonl.gz"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "manifest.json"))
}

func TestGenerate_InvalidWindowWritesNothing(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out")
	cfg.End = cfg.Start

	err := Generate(context.Background(), zap.NewNop(), cfg, metricnoop.NewMeterProvider(), tracenoop.NewTracerProvider())
	require.ErrorIs(t, err, order.ErrInvalidWindow)
	assert.NoDirExists(t, cfg.Output.Dir)
}

type tableRecorder struct {
	mu    sync.Mutex
	names []string
	fail  string
}

func (r *tableRecorder) WriteTable(_ context.Context, t export.Table) error {
	if t.Name == r.fail {
		return errors.New("disk full")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, t.Name)
	return nil
}

func TestWriteTables(t *testing.T) {
	tables := []export.Table{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}

	rec := &tableRecorder{}
	require.NoError(t, writeTables(context.Background(), rec, tables))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, rec.names)

	err := writeTables(context.Background(), &tableRecorder{fail: "c"}, tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export c")
}

func TestBuildReference(t *testing.T) {
	cfg := validConfig()
	start, end, err := cfg.Window()
	require.NoError(t, err)

	ref, err := BuildReference(cfg, start, end)
	require.NoError(t, err)
	assert.Len(t, ref.Stores, 20)
	assert.Len(t, ref.Customers, 90)
	assert.NotEmpty(t, ref.Products)
	assert.Len(t, ref.Markup, len(ref.Products))
	assert.NotEmpty(t, ref.VendorItems)
	assert.Positive(t, ref.Holidays.Len())
	assert.Positive(t, ref.Discounts.Len())

	name, ok := ref.Holidays.Name(start)
	require.True(t, ok)
	assert.NotEmpty(t, name)
}

func TestManifest_Encode(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{
		RunID:  uuid.MustParse("6f1c1c1e-4a43-4d7a-9f57-1b1d3a0c2b11"),
		Seed:   1,
		Start:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Format: FormatCSV,
		Stats:  order.Stats{Days: 31, Orders: 10, Lines: 25},
		Tables: []TableCount{{Name: "stores", Rows: 20}, {Name: "orders", Rows: 25}},
	}
	path, err := WriteManifest(dir, m)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "6f1c1c1e-4a43-4d7a-9f57-1b1d3a0c2b11", got["run_id"])
	assert.Equal(t, "2024-02-01", got["end"])
	assert.EqualValues(t, 31, got["days"])
	assert.Equal(t, map[string]any{"stores": float64(20), "orders": float64(25)}, got["tables"])
}

func TestGenerate_OrdersCloseFailure(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Dir = t.TempDir()

	var lines int
	tables := &tableRecorder{}
	open := func(context.Context, *zap.Logger, *Config) (*output, error) {
		return &output{
			tables: tables,
			orders: order.SinkFunc(func(_ context.Context, l []order.Line) error {
				lines += len(l)
				return nil
			}),
			finish: func() error { return errors.New("write gzip trailer: no space left on device") },
		}, nil
	}

	err := generate(context.Background(), zap.NewNop(), cfg, metricnoop.NewMeterProvider(), tracenoop.NewTracerProvider(), open)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close orders")
	assert.Positive(t, lines)
	assert.Empty(t, tables.names)
	assert.NoFileExists(t, filepath.Join(cfg.Output.Dir, "manifest.json"))
}

func TestOutput_Close(t *testing.T) {
	var finished, released int
	out := &output{
		finish:  func() error { finished++; return nil },
		release: func() { released++ },
	}

	require.NoError(t, out.finishOrders())
	require.NoError(t, out.finishOrders())
	require.NoError(t, out.close())
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, released)

	failing := &output{finish: func() error { return errors.New("close failed") }}
	require.Error(t, failing.close())
}

func TestNewProbes(t *testing.T) {
	cfg := validConfig()
	progress := health.NewProgress(time.Now())
	h := newProbes(cfg, progress, func(context.Context) error {
		return errors.New("connection refused")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.Start(ctx, 10*time.Millisecond)
	defer h.Stop()
	h.SetReady(true)

	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	status := func(path string) int {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			return 0
		}
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, status("/livez"))
	assert.Eventually(t, func() bool {
		return status("/readyz") == http.StatusServiceUnavailable
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, http.StatusOK, status("/livez"))
}
