package engine

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/archibald-tools/archex/internal/pagetable"
)

// DriverConfig configures a reconstruction run.
type DriverConfig struct {
	// Schema is the document-type layout to reconstruct.
	Schema *Schema
	// Opener produces the page source. Unless SinglePass is set, the
	// driver reopens the source for every cycle so memory stays bounded
	// by one cycle's pages.
	Opener pagetable.Opener
	// CycleSize, when positive, skips detection and forces the size.
	CycleSize int
	// ScanWindow bounds detection; zero means DefaultScanWindow.
	ScanWindow int
	// Filter decides row validity. The zero Filter keeps everything with
	// a present primary key; callers normally use DefaultFilter.
	Filter Filter
	// Diag receives diagnostic lines. Nil discards them.
	Diag io.Writer
	// Logger receives structured progress and skip events. Nil discards.
	Logger *slog.Logger
	// RunID tags log events so interleaved runs can be told apart.
	RunID string
	// SinglePass keeps one source open for the whole run instead of
	// reopening per cycle. Faster, but memory grows with document size
	// on backends that cache extracted pages.
	SinglePass bool
}

// Stats counts what a run saw and what it kept.
type Stats struct {
	Cycles        int
	CyclesSkipped int
	Rows          int
	RowsSkipped   int
	Emitted       int
}

// Driver streams reconstructed records from a paginated export.
type Driver struct {
	cfg   DriverConfig
	log   *slog.Logger
	stats Stats
	err   error
}

// NewDriver validates the config and returns a driver.
func NewDriver(cfg DriverConfig) (*Driver, error) {
	if cfg.Schema == nil {
		return nil, fmt.Errorf("driver: schema is required")
	}
	if cfg.Opener == nil {
		return nil, fmt.Errorf("driver: opener is required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("schema", cfg.Schema.Name)
	if cfg.RunID != "" {
		log = log.With("run_id", cfg.RunID)
	}
	if cfg.Diag == nil {
		cfg.Diag = io.Discard
	}
	return &Driver{cfg: cfg, log: log}, nil
}

// Stats returns the run counters. Valid after the sequence returned by
// Records has been drained.
func (d *Driver) Stats() Stats { return d.stats }

// Err returns the fatal error, if any, that ended the sequence early.
// Per-row and per-cycle failures are not fatal; only failing to open the
// source at the start of the run is.
func (d *Driver) Err() error { return d.err }

// Records returns a lazy sequence of reconstructed records. Records are
// assembled one cycle at a time; stopping iteration early stops all work.
// Row- and cycle-level failures are isolated: they are logged, counted,
// and skipped without ending the sequence.
func (d *Driver) Records(ctx context.Context) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		src, err := d.cfg.Opener.Open(ctx)
		if err != nil {
			d.err = fmt.Errorf("opening source: %w", err)
			return
		}

		pageCount, err := src.PageCount(ctx)
		if err != nil {
			src.Close()
			d.err = fmt.Errorf("counting pages: %w", err)
			return
		}

		cycleSize := d.cfg.CycleSize
		if cycleSize <= 0 {
			det := DetectCycle(ctx, src, d.cfg.Schema, d.cfg.ScanWindow)
			cycleSize = det.Size
			if err := WriteDetectionLine(d.cfg.Diag, d.cfg.Schema.Name, det); err != nil {
				d.log.Warn("writing detection diagnostic", "error", err)
			}
			d.log.Info("cycle size resolved",
				"size", det.Size,
				"expected", det.Expected,
				"status", det.Status,
				"first_anchor", det.FirstAnchor)
		}
		if cycleSize <= 0 {
			src.Close()
			d.err = fmt.Errorf("resolved cycle size %d is not positive", cycleSize)
			return
		}

		if !d.cfg.SinglePass {
			src.Close()
			src = nil
		}
		defer func() {
			if src != nil {
				src.Close()
			}
		}()

		for start := 0; start < pageCount; start += cycleSize {
			if ctx.Err() != nil {
				return
			}
			if start+cycleSize > pageCount {
				// Trailing pages that do not fill a cycle cannot
				// align rows across all slots; skip them whole.
				d.stats.CyclesSkipped++
				d.log.Warn("skipping truncated trailing cycle",
					"start_page", start,
					"pages_left", pageCount-start,
					"cycle_size", cycleSize)
				return
			}

			if !d.cfg.SinglePass {
				src, err = d.cfg.Opener.Open(ctx)
				if err != nil {
					d.stats.CyclesSkipped++
					d.log.Warn("reopening source for cycle",
						"start_page", start, "error", err)
					src = nil
					continue
				}
			}

			more := d.emitCycle(ctx, src, start, cycleSize, yield)

			if !d.cfg.SinglePass && src != nil {
				src.Close()
				src = nil
			}
			if !more {
				return
			}
		}
	}
}

// emitCycle extracts the cycle's slot tables, assembles its rows, and
// yields the survivors. It reports false when the consumer stopped.
func (d *Driver) emitCycle(ctx context.Context, src pagetable.Source, start, cycleSize int, yield func(*Record) bool) bool {
	d.stats.Cycles++
	slots := d.cfg.Schema.SlotCount()
	if slots > cycleSize {
		slots = cycleSize
	}

	tables := make([]pagetable.Table, slots)
	for i := 0; i < slots; i++ {
		n, tbl, err := src.FirstTable(ctx, start+i)
		if err != nil {
			d.stats.CyclesSkipped++
			d.stats.Cycles--
			d.log.Warn("skipping cycle: page extraction failed",
				"start_page", start, "page", start+i, "error", err)
			return true
		}
		if n > 1 {
			d.log.Debug("page has multiple tables, using the first",
				"page", start+i, "tables", n)
		}
		tables[i] = tbl
	}

	anchor := tables[0]
	if anchor.IsEmpty() || anchor.HeaderOnly() {
		d.stats.CyclesSkipped++
		d.stats.Cycles--
		d.log.Warn("skipping cycle: anchor page has no data rows",
			"start_page", start)
		return true
	}

	rows := maxDataRows(tables)
	for rowIdx := 0; rowIdx < rows; rowIdx++ {
		d.stats.Rows++
		rec, missing := assembleRow(d.cfg.Schema, tables, rowIdx)
		if len(missing) > 0 {
			d.stats.RowsSkipped++
			d.log.Warn("skipping row: required fields missing",
				"start_page", start, "row", rowIdx, "fields", missing)
			continue
		}
		if !d.cfg.Filter.Keep(rec.Get(d.cfg.Schema.PrimaryKey), rec.PrimaryKeyRaw()) {
			d.stats.RowsSkipped++
			continue
		}
		if d.cfg.Schema.Valid != nil && !d.cfg.Schema.Valid(rec) {
			d.stats.RowsSkipped++
			d.log.Warn("skipping row: values out of range",
				"start_page", start, "row", rowIdx)
			continue
		}
		if d.cfg.Schema.Finalize != nil {
			d.cfg.Schema.Finalize(rec)
		}
		d.stats.Emitted++
		if !yield(rec) {
			return false
		}
	}
	return true
}
