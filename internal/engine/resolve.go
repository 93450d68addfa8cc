package engine

import (
	"strings"

	"github.com/archibald-tools/archex/internal/pagetable"
)

// resolveCell locates the field's cell within one table row. The second
// return reports whether a cell was found; header-match misses and
// out-of-range indexes both come back false rather than erroring, since a
// single malformed page must not abort the run.
func resolveCell(f FieldSpec, tbl pagetable.Table, row []string) (string, bool) {
	col := -1
	switch f.Match {
	case MatchIndex:
		col = f.Column
	case MatchHeader:
		col = findHeaderColumn(tbl.Header(), f.Label)
	}
	if col < 0 || col >= len(row) {
		return "", false
	}
	return row[col], true
}

// findHeaderColumn returns the index of the first header cell containing
// label, compared case-insensitively, or -1.
func findHeaderColumn(header []string, label string) int {
	needle := strings.ToLower(label)
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), needle) {
			return i
		}
	}
	return -1
}
