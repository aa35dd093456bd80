// Package export turns reference data and order lines into named tables of
// typed rows that the storage backends persist.
package export

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/starmart-datagen/internal/domain/order"
)

// Table is a named set of rows. Row values are string, int, int64, float64,
// bool, decimal.Decimal or time.Time so that database backends can copy them
// without conversion.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// TableWriter persists whole tables.
type TableWriter interface {
	WriteTable(ctx context.Context, t Table) error
}

// Orders is the name of the order lines table.
const Orders = "orders"

// OrderColumns are the columns of the order lines table.
var OrderColumns = []string{
	"line_order_id",
	"order_id",
	"customer_id",
	"product_id",
	"store_id",
	"cashier_id",
	"order_datetime",
	"quantity",
	"final_price",
}

// OrderRow returns the typed row of l in OrderColumns order.
func OrderRow(l order.Line) []any {
	return []any{
		l.LineID,
		l.OrderID,
		l.CustomerID,
		l.ProductID,
		l.StoreID,
		l.CashierID,
		l.OrderedAt,
		l.Quantity,
		l.FinalPrice,
	}
}

// DateTimeLayout formats order timestamps in text outputs.
const DateTimeLayout = time.DateTime

// FormatValue renders a row value for text outputs. Times at midnight UTC are
// rendered as dates, others as date and time.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case decimal.Decimal:
		return v.String()
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(DateTimeLayout)
	case nil:
		return ""
	default:
		return ""
	}
}
