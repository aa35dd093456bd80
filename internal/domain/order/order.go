package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Configuration errors. They are returned before any line is written.
var (
	ErrInvalidWindow = errors.New("end date must be after start date")
	ErrInvalidHours  = errors.New("close hour must be after open hour")
	ErrNoSink        = errors.New("sink is required")

	ErrMissingDependency = errors.New("missing dependency")
)

// Line is one emitted order line. Lines of the same visit share OrderID,
// CustomerID, StoreID, CashierID and OrderedAt.
type Line struct {
	LineID     int64
	OrderID    int64
	CustomerID string
	ProductID  string
	StoreID    string
	CashierID  string
	OrderedAt  time.Time
	Quantity   int
	FinalPrice decimal.Decimal
}

// Sink accepts lines in emission order. Write receives the lines of one
// order; implementations buffer and persist them on their own schedule and
// must not retain the slice after returning. Flush is called once after the
// last order.
type Sink interface {
	Write(ctx context.Context, lines []Line) error
	Flush(ctx context.Context) error
}

// SinkFunc adapts a function to a Sink with a no-op Flush.
type SinkFunc func(ctx context.Context, lines []Line) error

func (f SinkFunc) Write(ctx context.Context, lines []Line) error { return f(ctx, lines) }

func (f SinkFunc) Flush(context.Context) error { return nil }

// MultiSink fans lines out to every sink in order, stopping at the first error.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, lines []Line) error {
	for _, s := range m {
		if err := s.Write(ctx, lines); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) Flush(ctx context.Context) error {
	for _, s := range m {
		if err := s.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

// NoCashierError indicates a store without any checkout staff.
type NoCashierError struct {
	StoreID string
}

func (e *NoCashierError) Error() string {
	return fmt.Sprintf("store %s has no cashiers", e.StoreID)
}

// CategoryNotStockedError indicates a selected category with no products in
// the visited store.
type CategoryNotStockedError struct {
	StoreID  string
	Category string
}

func (e *CategoryNotStockedError) Error() string {
	return fmt.Sprintf("store %s stocks no products in category %q", e.StoreID, e.Category)
}

// Stats summarizes a run.
type Stats struct {
	Days   int
	Orders int64
	Lines  int64
}
