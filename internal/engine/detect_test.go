package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/archibald-tools/archex/internal/pagetable"
	"github.com/archibald-tools/archex/internal/testutil"
)

func anchorPage(header string) pagetable.Table {
	return testutil.Tbl([]string{header, "OTHER"}, []string{"1", "x"})
}

func plainPage() pagetable.Table {
	return testutil.Tbl([]string{"SOMETHING", "ELSE"}, []string{"a", "b"})
}

func detectSchema(defaultCycle int) *Schema {
	return &Schema{
		Name:         "test",
		AnchorLabel:  "ID ARTICOLO",
		DefaultCycle: defaultCycle,
		Fields:       []FieldSpec{{Name: "id", Slot: 0, Match: MatchIndex, Column: 0}},
		PrimaryKey:   "id",
	}
}

func TestDetectCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("matching recurrence is OK", func(t *testing.T) {
		src := testutil.NewFakeSource(
			anchorPage("ID ARTICOLO"), plainPage(), plainPage(),
			anchorPage("ID ARTICOLO"), plainPage(), plainPage(),
		)
		det := DetectCycle(ctx, src, detectSchema(3), 0)
		if det.Size != 3 || det.Status != DetectionOK {
			t.Fatalf("got size=%d status=%s, want 3 OK", det.Size, det.Status)
		}
		if det.FirstAnchor != 0 {
			t.Errorf("first anchor = %d, want 0", det.FirstAnchor)
		}
	})

	t.Run("different recurrence is CHANGED and wins", func(t *testing.T) {
		src := testutil.NewFakeSource(
			anchorPage("ID ARTICOLO"), plainPage(), plainPage(), plainPage(),
			anchorPage("ID ARTICOLO"), plainPage(), plainPage(), plainPage(),
		)
		det := DetectCycle(ctx, src, detectSchema(3), 0)
		if det.Size != 4 || det.Status != DetectionChanged {
			t.Fatalf("got size=%d status=%s, want 4 CHANGED", det.Size, det.Status)
		}
	})

	t.Run("single anchor falls back to default", func(t *testing.T) {
		src := testutil.NewFakeSource(anchorPage("ID ARTICOLO"), plainPage(), plainPage())
		det := DetectCycle(ctx, src, detectSchema(3), 0)
		if det.Size != 3 || det.Status != DetectionFailed {
			t.Fatalf("got size=%d status=%s, want 3 DETECTION_FAILED", det.Size, det.Status)
		}
		if det.FirstAnchor != 0 {
			t.Errorf("first anchor = %d, want 0", det.FirstAnchor)
		}
	})

	t.Run("no anchors falls back to default", func(t *testing.T) {
		src := testutil.NewFakeSource(plainPage(), plainPage())
		det := DetectCycle(ctx, src, detectSchema(5), 0)
		if det.Size != 5 || det.Status != DetectionFailed || det.FirstAnchor != -1 {
			t.Fatalf("got %+v, want size=5 DETECTION_FAILED firstAnchor=-1", det)
		}
	})

	t.Run("anchor match is case-insensitive substring", func(t *testing.T) {
		src := testutil.NewFakeSource(
			anchorPage("Id Articolo Interno"), plainPage(),
			anchorPage("ID ARTICOLO"), plainPage(),
		)
		det := DetectCycle(ctx, src, detectSchema(2), 0)
		if det.Size != 2 || det.Status != DetectionOK {
			t.Fatalf("got size=%d status=%s, want 2 OK", det.Size, det.Status)
		}
	})

	t.Run("unreadable pages are non-anchors", func(t *testing.T) {
		src := testutil.NewFakeSource(
			anchorPage("ID ARTICOLO"), plainPage(),
			anchorPage("ID ARTICOLO"), plainPage(),
		)
		src.FailPages = map[int]bool{1: true}
		det := DetectCycle(ctx, src, detectSchema(2), 0)
		if det.Size != 2 || det.Status != DetectionOK {
			t.Fatalf("got size=%d status=%s, want 2 OK", det.Size, det.Status)
		}
	})

	t.Run("scan window bounds the search", func(t *testing.T) {
		pages := []pagetable.Table{anchorPage("ID ARTICOLO")}
		for i := 0; i < 10; i++ {
			pages = append(pages, plainPage())
		}
		pages = append(pages, anchorPage("ID ARTICOLO"))
		src := testutil.NewFakeSource(pages...)

		det := DetectCycle(ctx, src, detectSchema(4), 5)
		if det.Status != DetectionFailed || det.Size != 4 {
			t.Fatalf("got size=%d status=%s, want fallback within window", det.Size, det.Status)
		}
	})
}

func TestWriteDetectionLine(t *testing.T) {
	var buf strings.Builder
	det := Detection{Size: 8, Expected: 8, Status: DetectionOK, FirstAnchor: 0}
	if err := WriteDetectionLine(&buf, "products", det); err != nil {
		t.Fatal(err)
	}
	want := `CYCLE_SIZE_WARNING:{"parser":"products","detected":8,"expected":8,"status":"OK"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
