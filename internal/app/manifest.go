package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"github.com/xenking/starmart-datagen/internal/domain/order"
)

// Manifest describes a finished run.
type Manifest struct {
	RunID         uuid.UUID
	Seed          uint64
	ReferenceSeed uint64
	DiscountSeed  uint64
	Start, End    time.Time
	Format        string
	GeneratedAt   time.Time
	Stats         order.Stats
	// Tables maps table names to row counts in export order.
	Tables []TableCount
}

type TableCount struct {
	Name string
	Rows int
}

// Encode writes m as a JSON object.
func (m *Manifest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("run_id")
	e.Str(m.RunID.String())
	e.FieldStart("seed")
	e.UInt64(m.Seed)
	e.FieldStart("reference_seed")
	e.UInt64(m.ReferenceSeed)
	e.FieldStart("discount_seed")
	e.UInt64(m.DiscountSeed)
	e.FieldStart("start")
	e.Str(m.Start.Format(time.DateOnly))
	e.FieldStart("end")
	e.Str(m.End.Format(time.DateOnly))
	e.FieldStart("format")
	e.Str(m.Format)
	e.FieldStart("generated_at")
	e.Str(m.GeneratedAt.UTC().Format(time.RFC3339))

	e.FieldStart("days")
	e.Int(m.Stats.Days)
	e.FieldStart("orders")
	e.Int64(m.Stats.Orders)
	e.FieldStart("lines")
	e.Int64(m.Stats.Lines)

	e.FieldStart("tables")
	e.ObjStart()
	for _, t := range m.Tables {
		e.FieldStart(t.Name)
		e.Int(t.Rows)
	}
	e.ObjEnd()
	e.ObjEnd()
}

// WriteManifest writes dir/manifest.json.
func WriteManifest(dir string, m *Manifest) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	var e jx.Encoder
	m.Encode(&e)

	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, append(e.Bytes(), '\n'), 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
