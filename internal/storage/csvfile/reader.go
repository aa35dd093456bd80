package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
)

// ParseOrder decodes one orders.csv record.
func ParseOrder(record []string) (order.Line, error) {
	if len(record) != len(export.OrderColumns) {
		return order.Line{}, errors.Errorf("expected %d fields, got %d", len(export.OrderColumns), len(record))
	}

	var (
		l   order.Line
		err error
	)
	if l.LineID, err = strconv.ParseInt(record[0], 10, 64); err != nil {
		return order.Line{}, errors.Wrap(err, "line_order_id")
	}
	if l.OrderID, err = strconv.ParseInt(record[1], 10, 64); err != nil {
		return order.Line{}, errors.Wrap(err, "order_id")
	}
	l.CustomerID = record[2]
	l.ProductID = record[3]
	l.StoreID = record[4]
	l.CashierID = record[5]
	if l.OrderedAt, err = time.Parse(export.DateTimeLayout, record[6]); err != nil {
		return order.Line{}, errors.Wrap(err, "order_datetime")
	}
	if l.Quantity, err = strconv.Atoi(record[7]); err != nil {
		return order.Line{}, errors.Wrap(err, "quantity")
	}
	if l.FinalPrice, err = decimal.NewFromString(record[8]); err != nil {
		return order.Line{}, errors.Wrap(err, "final_price")
	}
	return l, nil
}

// StreamOrders reads an orders CSV, gzip-compressed when path ends in ".gz",
// and calls fn for each line after the header. It returns the number of lines
// read.
func StreamOrders(ctx context.Context, path string, fn func(order.Line) error) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return 0, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = len(export.OrderColumns)
	if _, err := cr.Read(); err != nil {
		return 0, errors.Wrapf(err, "read header of %s", path)
	}

	var n int64
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrapf(err, "read %s", path)
		}
		l, err := ParseOrder(record)
		if err != nil {
			return n, errors.Wrapf(err, "parse record %d", n+1)
		}
		if err := fn(l); err != nil {
			return n, err
		}
		n++
	}
}
