// Command load-orders streams a generated orders CSV (plain or gzip) into
// PostgreSQL in COPY batches.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
	"github.com/xenking/starmart-datagen/internal/storage/csvfile"
	"github.com/xenking/starmart-datagen/internal/storage/postgres"
)

func main() {
	var (
		databaseURL string
		file        string
		batchSize   int
		truncate    bool
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&file, "file", "data/orders.csv", "orders CSV, gzip-compressed when it ends in .gz")
	flag.IntVar(&batchSize, "batch-size", postgres.DefaultBatchSize, "order lines per COPY batch")
	flag.BoolVar(&truncate, "truncate", false, "empty the orders table before loading")
	flag.Parse()

	if err := loadEnv(); err != nil {
		slog.Error("load .env failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if batchSize <= 0 {
		slog.Error("batch size must be positive", slog.Int("batch_size", batchSize))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, file, batchSize, truncate); err != nil {
		slog.Error("load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("load completed successfully")
}

// loadEnv loads .env files into the environment. Missing files are ignored.
func loadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

func run(ctx context.Context, databaseURL, file string, batchSize int, truncate bool) error {
	if _, err := os.Stat(file); err != nil {
		return errors.Wrapf(err, "check file %s", file)
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return err
	}
	if truncate {
		if err := postgres.Truncate(ctx, pool, export.Orders); err != nil {
			return err
		}
	}

	started := time.Now()
	n, err := load(ctx, pool, file, batchSize)
	if err != nil {
		return errors.Wrapf(err, "load %s", file)
	}

	slog.Info("orders loaded",
		slog.Int64("lines", n),
		slog.Duration("took", time.Since(started)),
	)
	return nil
}

// load copies every line of file and returns the number of lines stored.
func load(ctx context.Context, conn postgres.Conn, file string, batchSize int) (int64, error) {
	sink := postgres.NewOrderSink(conn, batchSize)
	next := int64(batchSize)
	var buf [1]order.Line

	if _, err := csvfile.StreamOrders(ctx, file, func(l order.Line) error {
		buf[0] = l
		if err := sink.Write(ctx, buf[:]); err != nil {
			return err
		}
		if c := sink.Copied(); c >= next {
			slog.Info("load progress", slog.Int64("lines", c))
			next = c + int64(batchSize)
		}
		return nil
	}); err != nil {
		return sink.Copied(), err
	}

	if err := sink.Flush(ctx); err != nil {
		return sink.Copied(), err
	}
	return sink.Copied(), nil
}
