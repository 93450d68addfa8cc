// Package testutil provides an in-memory page source for tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/archibald-tools/archex/internal/pagetable"
)

// FakeSource serves canned tables, one per page, and records how it was
// used so tests can assert on open/close discipline.
type FakeSource struct {
	// Pages holds the first table of each page, in page order.
	Pages []pagetable.Table
	// FailPages lists page indexes whose extraction should error.
	FailPages map[int]bool

	Closed        bool
	ExtractCalls  int
	pageCountErr  error
	extractErrFmt string
}

// NewFakeSource builds a source over the given per-page tables.
func NewFakeSource(pages ...pagetable.Table) *FakeSource {
	return &FakeSource{Pages: pages, extractErrFmt: "page %d: extraction failed"}
}

// PageCount implements pagetable.Source.
func (f *FakeSource) PageCount(ctx context.Context) (int, error) {
	if f.pageCountErr != nil {
		return 0, f.pageCountErr
	}
	return len(f.Pages), nil
}

// FirstTable implements pagetable.Source.
func (f *FakeSource) FirstTable(ctx context.Context, page int) (int, pagetable.Table, error) {
	f.ExtractCalls++
	if f.FailPages[page] {
		return 0, pagetable.Table{}, fmt.Errorf(f.extractErrFmt, page)
	}
	if page < 0 || page >= len(f.Pages) {
		return 0, pagetable.Table{}, fmt.Errorf("page %d out of range", page)
	}
	return 1, f.Pages[page], nil
}

// Close implements pagetable.Source.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}

// FakeOpener hands out FakeSources built from the same pages on every Open
// call, mimicking per-cycle reopen of a real document.
type FakeOpener struct {
	Pages     []pagetable.Table
	FailPages map[int]bool
	// FailOpenAfter, when positive, makes Open fail once that many opens
	// have already succeeded.
	FailOpenAfter int
	// OpenErr, when set, makes every Open fail.
	OpenErr error

	Opens   int
	Sources []*FakeSource
}

// Open implements pagetable.Opener.
func (f *FakeOpener) Open(ctx context.Context) (pagetable.Source, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	if f.FailOpenAfter > 0 && f.Opens >= f.FailOpenAfter {
		return nil, fmt.Errorf("open %d: source unavailable", f.Opens)
	}
	f.Opens++
	src := NewFakeSource(f.Pages...)
	src.FailPages = f.FailPages
	f.Sources = append(f.Sources, src)
	return src, nil
}

// Tbl is a shorthand table constructor for tests.
func Tbl(rows ...[]string) pagetable.Table {
	return pagetable.Table{Rows: rows}
}
