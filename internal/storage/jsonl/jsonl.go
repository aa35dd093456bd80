// Package jsonl writes tables and the order stream as newline-delimited JSON
// objects keyed by column name.
package jsonl

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
)

const ext = ".jsonl"

// EncodeRow appends one JSON object for row to e. Decimals are written as
// JSON numbers without loss of precision.
func EncodeRow(e *jx.Encoder, columns []string, row []any) {
	e.ObjStart()
	for i, c := range columns {
		e.FieldStart(c)
		encodeValue(e, row[i])
	}
	e.ObjEnd()
}

func encodeValue(e *jx.Encoder, v any) {
	switch v := v.(type) {
	case string:
		e.Str(v)
	case int:
		e.Int(v)
	case int64:
		e.Int64(v)
	case float64:
		e.Float64(v)
	case bool:
		e.Bool(v)
	case decimal.Decimal:
		e.Raw([]byte(v.String()))
	case time.Time:
		e.Str(export.FormatValue(v))
	default:
		e.Null()
	}
}

var _ export.TableWriter = (*Writer)(nil)

// Writer writes each table to <Dir>/<name>.jsonl[.gz].
type Writer struct {
	Dir  string
	Gzip bool
}

func (w *Writer) WriteTable(ctx context.Context, t export.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := export.Create(w.Dir, t.Name, ext, w.Gzip)
	if err != nil {
		return err
	}
	var e jx.Encoder
	for _, row := range t.Rows {
		e.Reset()
		EncodeRow(&e, t.Columns, row)
		e.RawStr("\n")
		if _, err := f.Write(e.Bytes()); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "write %s", t.Name)
		}
	}
	return f.Close()
}

var _ order.Sink = (*OrderSink)(nil)

// OrderSink streams order lines to orders.jsonl[.gz].
type OrderSink struct {
	f          *export.File
	e          jx.Encoder
	flushEvery int
	pending    int
	lines      int64
}

func NewOrderSink(dir string, compress bool, flushEvery int) (*OrderSink, error) {
	f, err := export.Create(dir, export.Orders, ext, compress)
	if err != nil {
		return nil, err
	}
	return &OrderSink{f: f, flushEvery: flushEvery}, nil
}

func (s *OrderSink) Path() string { return s.f.Path }

func (s *OrderSink) Lines() int64 { return s.lines }

func (s *OrderSink) Write(ctx context.Context, lines []order.Line) error {
	s.e.Reset()
	for _, l := range lines {
		EncodeRow(&s.e, export.OrderColumns, export.OrderRow(l))
		s.e.RawStr("\n")
	}
	if _, err := s.f.Write(s.e.Bytes()); err != nil {
		return errors.Wrap(err, "write orders")
	}
	s.lines += int64(len(lines))
	s.pending += len(lines)
	if s.flushEvery > 0 && s.pending >= s.flushEvery {
		return s.Flush(ctx)
	}
	return nil
}

func (s *OrderSink) Flush(context.Context) error {
	s.pending = 0
	return s.f.Flush()
}

func (s *OrderSink) Close() error {
	return s.f.Close()
}
