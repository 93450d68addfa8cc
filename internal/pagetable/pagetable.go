// Package pagetable defines the tabular page model the extraction engine
// consumes, and the capability interfaces a page source must provide.
//
// The engine never reads PDFs itself: it sees pages only as tables of text
// cells obtained through a Source. Any backend that can report a page
// count and the first detected table of a page can drive the engine.
package pagetable

import "context"

// Table is the first detected table of one page: ordered rows of text
// cells, with row 0 naming the columns. The zero Table represents a page
// where no table was detected.
type Table struct {
	Rows [][]string
}

// IsEmpty reports whether no table was detected at all.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// HeaderOnly reports whether the table carries a header but no data rows.
func (t Table) HeaderOnly() bool {
	return len(t.Rows) == 1
}

// Header returns the column-name row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns every row after the header.
func (t Table) DataRows() [][]string {
	if len(t.Rows) <= 1 {
		return nil
	}
	return t.Rows[1:]
}

// Source is the page-to-table capability consumed by the engine.
//
// A page without a detectable table yields (0, Table{}, nil): that is a
// normal outcome, not an error. Errors are reserved for pages that could
// not be read at all.
type Source interface {
	// PageCount returns the total number of pages in the document.
	PageCount(ctx context.Context) (int, error)

	// FirstTable returns how many tables were detected on the page and
	// the rows of the first one. Page indices are zero-based.
	FirstTable(ctx context.Context, page int) (int, Table, error)

	// Close releases the resources backing the source.
	Close() error
}

// Opener produces a fresh Source for one unit of work. The streaming
// driver re-opens per cycle in bounded-memory mode so everything cached
// for the previous cycle is released before the next one begins.
type Opener interface {
	Open(ctx context.Context) (Source, error)
}
