package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
)

var _ export.TableWriter = (*TableWriter)(nil)

// TableWriter copies whole tables. With Replace set the table is truncated
// first.
type TableWriter struct {
	Conn    Conn
	Replace bool
}

func (w *TableWriter) WriteTable(ctx context.Context, t export.Table) error {
	if w.Replace {
		if err := Truncate(ctx, w.Conn, t.Name); err != nil {
			return err
		}
	}
	n, err := w.Conn.CopyFrom(ctx, pgx.Identifier{t.Name}, t.Columns, pgx.CopyFromRows(t.Rows))
	if err != nil {
		return errors.Wrapf(err, "copy %s", t.Name)
	}
	if n != int64(len(t.Rows)) {
		return errors.Errorf("copy %s: wrote %d of %d rows", t.Name, n, len(t.Rows))
	}
	return nil
}

// DefaultBatchSize is the number of order lines per COPY.
const DefaultBatchSize = 50_000

var _ order.Sink = (*OrderSink)(nil)

// OrderSink buffers order lines and copies them into the orders table in
// batches.
type OrderSink struct {
	conn      Conn
	batchSize int
	rows      [][]any
	copied    int64
}

// NewOrderSink returns a sink copying batchSize lines at a time. Non-positive
// batchSize uses DefaultBatchSize.
func NewOrderSink(conn Conn, batchSize int) *OrderSink {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &OrderSink{
		conn:      conn,
		batchSize: batchSize,
		rows:      make([][]any, 0, batchSize),
	}
}

// Copied returns the number of lines stored so far.
func (s *OrderSink) Copied() int64 { return s.copied }

func (s *OrderSink) Write(ctx context.Context, lines []order.Line) error {
	for _, l := range lines {
		s.rows = append(s.rows, export.OrderRow(l))
	}
	if len(s.rows) >= s.batchSize {
		return s.Flush(ctx)
	}
	return nil
}

// Flush copies the buffered lines.
func (s *OrderSink) Flush(ctx context.Context) error {
	if len(s.rows) == 0 {
		return nil
	}
	n, err := s.conn.CopyFrom(ctx, pgx.Identifier{export.Orders}, export.OrderColumns, pgx.CopyFromRows(s.rows))
	if err != nil {
		return errors.Wrapf(err, "copy %d order lines", len(s.rows))
	}
	s.copied += n
	clear(s.rows)
	s.rows = s.rows[:0]
	return nil
}
