// Package pagesource backs the pagetable capability interfaces with real
// PDF files: tabula reads pages and detects tables, pdfcpu cross-checks the
// page count before a run starts.
package pagesource

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"github.com/archibald-tools/archex/internal/pagetable"
)

const openAttempts = 3

// FileOpener opens a PDF file as a fresh page source on every call. The
// export lands on a network share in production, so transient open
// failures retry briefly before giving up.
type FileOpener struct {
	Path string
}

// Open implements pagetable.Opener.
func (o FileOpener) Open(ctx context.Context) (pagetable.Source, error) {
	src, err := retry.DoWithData(
		func() (*pdfSource, error) { return openPDF(o.Path) },
		retry.Context(ctx),
		retry.Attempts(openAttempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", o.Path, err)
	}
	return src, nil
}

// Validate checks the file exists and that tabula and pdfcpu agree on its
// page count. Disagreement means a malformed file that would misalign
// cycles, so it is rejected up front.
func (o FileOpener) Validate(ctx context.Context) (int, error) {
	f, err := os.Open(o.Path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", o.Path, err)
	}
	refCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("reading page count of %s: %w", o.Path, err)
	}

	src, err := o.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	n, err := src.PageCount(ctx)
	if err != nil {
		return 0, err
	}
	if n != refCount {
		return 0, fmt.Errorf("page count mismatch in %s: reader sees %d, reference sees %d", o.Path, n, refCount)
	}
	return n, nil
}

// pdfSource adapts a tabula reader to pagetable.Source.
type pdfSource struct {
	rd       *reader.Reader
	detector tables.Detector
	pages    int
}

func openPDF(path string) (*pdfSource, error) {
	rd, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	n, err := rd.PageCount()
	if err != nil {
		rd.Close()
		return nil, fmt.Errorf("reading page count: %w", err)
	}
	return &pdfSource{
		rd:       rd,
		detector: tables.GetDetector("geometric"),
		pages:    n,
	}, nil
}

// PageCount implements pagetable.Source.
func (s *pdfSource) PageCount(ctx context.Context) (int, error) {
	return s.pages, nil
}

// FirstTable implements pagetable.Source. A page where detection finds no
// table returns a zero Table without error.
func (s *pdfSource) FirstTable(ctx context.Context, page int) (int, pagetable.Table, error) {
	if err := ctx.Err(); err != nil {
		return 0, pagetable.Table{}, err
	}

	pdfPage, err := s.rd.GetPage(page)
	if err != nil {
		return 0, pagetable.Table{}, fmt.Errorf("page %d: %w", page, err)
	}
	fragments, err := s.rd.ExtractTextFragments(pdfPage)
	if err != nil {
		return 0, pagetable.Table{}, fmt.Errorf("page %d: extracting text: %w", page, err)
	}

	width, _ := pdfPage.Width()
	height, _ := pdfPage.Height()
	modelPage := model.NewPage(width, height)
	modelPage.Number = page + 1
	modelPage.RawText = toModelFragments(fragments)

	detected, err := s.detector.Detect(modelPage)
	if err != nil {
		return 0, pagetable.Table{}, fmt.Errorf("page %d: detecting tables: %w", page, err)
	}
	if len(detected) == 0 {
		return 0, pagetable.Table{}, nil
	}
	return len(detected), toPageTable(detected[0]), nil
}

// Close implements pagetable.Source.
func (s *pdfSource) Close() error {
	return s.rd.Close()
}

// toModelFragments rewraps reader text fragments into the model shape the
// table detector consumes.
func toModelFragments(fragments []text.TextFragment) []model.TextFragment {
	out := make([]model.TextFragment, len(fragments))
	for i, f := range fragments {
		out[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return out
}

// toPageTable flattens a detected table into rows of trimmed cell text.
func toPageTable(t *model.Table) pagetable.Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell.Text)
		}
		rows[i] = cells
	}
	return pagetable.Table{Rows: rows}
}
