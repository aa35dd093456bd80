// Package csvfile writes tables and the order stream as CSV files with a
// header row, optionally gzip-compressed.
package csvfile

import (
	"context"
	"encoding/csv"

	"github.com/go-faster/errors"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
)

const ext = ".csv"

var _ export.TableWriter = (*Writer)(nil)

// Writer writes each table to <Dir>/<name>.csv[.gz].
type Writer struct {
	Dir  string
	Gzip bool
}

// WriteTable writes t in one pass.
func (w *Writer) WriteTable(ctx context.Context, t export.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := export.Create(w.Dir, t.Name, ext, w.Gzip)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(t.Columns); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s header", t.Name)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = export.FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "write %s", t.Name)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "flush %s", t.Name)
	}
	return f.Close()
}

var _ order.Sink = (*OrderSink)(nil)

// OrderSink streams order lines to orders.csv[.gz]. Buffered rows reach the
// file every flushEvery lines and on Flush.
type OrderSink struct {
	f          *export.File
	cw         *csv.Writer
	record     []string
	flushEvery int
	pending    int
	lines      int64
}

// NewOrderSink creates the orders file in dir and writes its header.
func NewOrderSink(dir string, compress bool, flushEvery int) (*OrderSink, error) {
	f, err := export.Create(dir, export.Orders, ext, compress)
	if err != nil {
		return nil, err
	}
	s := &OrderSink{
		f:          f,
		cw:         csv.NewWriter(f),
		record:     make([]string, len(export.OrderColumns)),
		flushEvery: flushEvery,
	}
	if err := s.cw.Write(export.OrderColumns); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "write orders header")
	}
	return s, nil
}

// Path returns the file path.
func (s *OrderSink) Path() string { return s.f.Path }

// Lines returns the number of lines written.
func (s *OrderSink) Lines() int64 { return s.lines }

func (s *OrderSink) Write(ctx context.Context, lines []order.Line) error {
	for _, l := range lines {
		for i, v := range export.OrderRow(l) {
			s.record[i] = export.FormatValue(v)
		}
		if err := s.cw.Write(s.record); err != nil {
			return errors.Wrapf(err, "write line %d", l.LineID)
		}
	}
	s.lines += int64(len(lines))
	s.pending += len(lines)
	if s.flushEvery > 0 && s.pending >= s.flushEvery {
		return s.Flush(ctx)
	}
	return nil
}

// Flush pushes buffered rows to the file.
func (s *OrderSink) Flush(context.Context) error {
	s.pending = 0
	s.cw.Flush()
	if err := s.cw.Error(); err != nil {
		return errors.Wrap(err, "flush orders")
	}
	return s.f.Flush()
}

// Close flushes and closes the file.
func (s *OrderSink) Close() error {
	s.cw.Flush()
	if err := s.cw.Error(); err != nil {
		_ = s.f.Close()
		return errors.Wrap(err, "flush orders")
	}
	return s.f.Close()
}
