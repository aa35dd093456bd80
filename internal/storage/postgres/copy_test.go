package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/starmart-datagen/db"
	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/export"
)

type copyCall struct {
	table   string
	columns []string
	rows    [][]any
}

type fakeConn struct {
	execs  []string
	copies []copyCall
	err    error
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, c.err
}

func (c *fakeConn) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	call := copyCall{table: table[0], columns: columns}
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		call.rows = append(call.rows, append([]any(nil), values...))
	}
	c.copies = append(c.copies, call)
	return int64(len(call.rows)), nil
}

func TestRunMigrations(t *testing.T) {
	conn := &fakeConn{}
	require.NoError(t, RunMigrations(context.Background(), conn))
	require.Len(t, conn.execs, 1)
	assert.Equal(t, db.Schema, conn.execs[0])
	assert.Contains(t, db.Schema, "CREATE TABLE IF NOT EXISTS orders")
}

func TestTableWriter(t *testing.T) {
	conn := &fakeConn{}
	w := &TableWriter{Conn: conn, Replace: true}
	tbl := export.Table{
		Name:    "stores",
		Columns: []string{"store_id", "population"},
		Rows:    [][]any{{"STRMRT_STR_01", 1000}, {"STRMRT_STR_02", 2000}},
	}
	require.NoError(t, w.WriteTable(context.Background(), tbl))

	assert.Equal(t, []string{`TRUNCATE TABLE "stores"`}, conn.execs)
	require.Len(t, conn.copies, 1)
	assert.Equal(t, "stores", conn.copies[0].table)
	assert.Equal(t, tbl.Rows, conn.copies[0].rows)
}

func TestTableWriter_Error(t *testing.T) {
	boom := errors.New("boom")
	w := &TableWriter{Conn: &fakeConn{err: boom}}
	require.ErrorIs(t, w.WriteTable(context.Background(), export.Table{Name: "stores"}), boom)
}

func TestOrderSink_Batches(t *testing.T) {
	ctx := context.Background()
	conn := &fakeConn{}
	s := NewOrderSink(conn, 3)

	at := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	var next int64
	write := func(n int) {
		lines := make([]order.Line, n)
		for i := range lines {
			next++
			lines[i] = order.Line{LineID: next, OrderID: 1, OrderedAt: at, Quantity: 1, FinalPrice: decimal.NewFromInt(1)}
		}
		require.NoError(t, s.Write(ctx, lines))
	}

	write(2)
	assert.Empty(t, conn.copies)
	write(2)
	require.Len(t, conn.copies, 1)
	assert.Len(t, conn.copies[0].rows, 4)
	assert.Equal(t, export.OrderColumns, conn.copies[0].columns)

	write(1)
	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.Flush(ctx))
	require.Len(t, conn.copies, 2)
	assert.Equal(t, int64(5), conn.copies[1].rows[0][0])
	assert.EqualValues(t, 5, s.Copied())
}

func TestOrderSink_DefaultBatch(t *testing.T) {
	s := NewOrderSink(&fakeConn{}, 0)
	assert.Equal(t, DefaultBatchSize, s.batchSize)
}
