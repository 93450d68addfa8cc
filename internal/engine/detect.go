package engine

import (
	"context"
	"strings"

	"github.com/archibald-tools/archex/internal/pagetable"
)

// DefaultScanWindow bounds how many leading pages detection inspects.
const DefaultScanWindow = 200

// DetectionStatus classifies a cycle-size detection outcome.
type DetectionStatus string

const (
	// DetectionOK means the detected size matches the schema's default.
	DetectionOK DetectionStatus = "OK"
	// DetectionChanged means a size was detected but differs from the
	// default; the detected size is used.
	DetectionChanged DetectionStatus = "CHANGED"
	// DetectionFailed means no recurrence was found; the default is used.
	DetectionFailed DetectionStatus = "DETECTION_FAILED"
)

// Detection is the result of measuring the cycle size from anchor-header
// recurrence.
type Detection struct {
	// Size is the cycle size the run will use.
	Size int
	// Expected is the schema's default cycle size.
	Expected int
	// Status classifies the outcome.
	Status DetectionStatus
	// FirstAnchor is the page index of the first anchor occurrence, -1 if
	// none was found.
	FirstAnchor int
}

// DetectCycle measures the cycle size by scanning up to scanWindow leading
// pages for recurrences of the schema's anchor header and taking the
// distance between the first two. It never fails: when fewer than two
// anchors are found within the window, it falls back to the schema default
// with DetectionFailed. Pages that cannot be extracted are treated as
// non-anchors.
func DetectCycle(ctx context.Context, src pagetable.Source, sch *Schema, scanWindow int) Detection {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}

	det := Detection{
		Size:        sch.DefaultCycle,
		Expected:    sch.DefaultCycle,
		Status:      DetectionFailed,
		FirstAnchor: -1,
	}

	limit := scanWindow
	if n, err := src.PageCount(ctx); err == nil && n < limit {
		limit = n
	}

	first := -1
	for page := 0; page < limit; page++ {
		_, tbl, err := src.FirstTable(ctx, page)
		if err != nil {
			continue
		}
		if !hasAnchor(tbl, sch.AnchorLabel) {
			continue
		}
		if first < 0 {
			first = page
			det.FirstAnchor = page
			continue
		}
		det.Size = page - first
		if det.Size == sch.DefaultCycle {
			det.Status = DetectionOK
		} else {
			det.Status = DetectionChanged
		}
		return det
	}

	return det
}

// hasAnchor reports whether the table's first header cell contains the
// anchor label, case-insensitively.
func hasAnchor(tbl pagetable.Table, label string) bool {
	header := tbl.Header()
	if len(header) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(header[0]), strings.ToLower(label))
}
