package app

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
	"github.com/xenking/starmart-datagen/internal/storage/csvfile"
	"github.com/xenking/starmart-datagen/internal/storage/jsonl"
	"github.com/xenking/starmart-datagen/internal/storage/postgres"
	"github.com/xenking/starmart-datagen/pkg/health"
)

// output bundles the destination of one run.
type output struct {
	tables export.TableWriter
	orders order.Sink
	// ready is an optional readiness check of the destination.
	ready health.CheckFunc
	// finish completes the order stream after its last flush.
	finish func() error
	// release frees the destination once tables are written.
	release func()

	finished bool
}

// finishOrders runs finish at most once.
func (o *output) finishOrders() error {
	if o.finished || o.finish == nil {
		return nil
	}
	o.finished = true
	return o.finish()
}

// close finishes the order stream if that has not happened yet and releases
// the destination.
func (o *output) close() error {
	err := o.finishOrders()
	if o.release != nil {
		o.release()
	}
	return err
}

type opener func(ctx context.Context, lg *zap.Logger, cfg *Config) (*output, error)

func openOutput(ctx context.Context, lg *zap.Logger, cfg *Config) (*output, error) {
	o := cfg.Output
	switch strings.ToLower(o.Format) {
	case FormatCSV:
		sink, err := csvfile.NewOrderSink(o.Dir, o.Gzip, o.FlushEvery)
		if err != nil {
			return nil, errors.Wrap(err, "open orders")
		}
		lg.Info("Writing CSV", zap.String("orders", sink.Path()))
		return &output{
			tables: &csvfile.Writer{Dir: o.Dir, Gzip: o.Gzip},
			orders: sink,
			finish: sink.Close,
		}, nil

	case FormatJSONL:
		sink, err := jsonl.NewOrderSink(o.Dir, o.Gzip, o.FlushEvery)
		if err != nil {
			return nil, errors.Wrap(err, "open orders")
		}
		lg.Info("Writing JSON lines", zap.String("orders", sink.Path()))
		return &output{
			tables: &jsonl.Writer{Dir: o.Dir, Gzip: o.Gzip},
			orders: sink,
			finish: sink.Close,
		}, nil

	case FormatPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "create db pool")
		}
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		if err := postgres.Truncate(ctx, pool, export.Orders); err != nil {
			pool.Close()
			return nil, err
		}
		lg.Info("Writing to PostgreSQL", zap.Int("batch", o.FlushEvery))
		return &output{
			tables: &postgres.TableWriter{Conn: pool, Replace: true},
			orders: postgres.NewOrderSink(pool, o.FlushEvery),
			ready:   pool.Ping,
			release: pool.Close,
		}, nil

	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", o.Format)
	}
}
