package pagesource

import (
	"context"
	"testing"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/text"
)

func TestToModelFragments(t *testing.T) {
	in := []text.TextFragment{
		{Text: "ID ARTICOLO", X: 10, Y: 20, Width: 80, Height: 12, FontSize: 9, FontName: "Helvetica"},
	}
	out := toModelFragments(in)
	if len(out) != 1 {
		t.Fatalf("got %d fragments, want 1", len(out))
	}
	f := out[0]
	if f.Text != "ID ARTICOLO" || f.BBox.X != 10 || f.BBox.Y != 20 || f.FontSize != 9 {
		t.Errorf("fragment not carried over: %+v", f)
	}
}

func TestToPageTable(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.SetCell(0, 0, model.Cell{Text: " ID "})
	tbl.SetCell(0, 1, model.Cell{Text: "NOME"})
	tbl.SetCell(1, 0, model.Cell{Text: "70.962"})
	tbl.SetCell(1, 1, model.Cell{Text: "Carrazza\nGiovanni"})

	got := toPageTable(tbl)
	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}
	if got.Header()[0] != "ID" {
		t.Errorf("header cell not trimmed: %q", got.Header()[0])
	}
	if got.DataRows()[0][1] != "Carrazza\nGiovanni" {
		t.Errorf("inner newlines must survive for multiline cells: %q", got.DataRows()[0][1])
	}
}

func TestFileOpenerMissingFile(t *testing.T) {
	opener := FileOpener{Path: "/definitely/not/here.pdf"}
	if _, err := opener.Open(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := opener.Validate(context.Background()); err == nil {
		t.Fatal("expected validate error for missing file")
	}
}
