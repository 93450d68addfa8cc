package engine

import (
	"strings"

	"github.com/archibald-tools/archex/internal/pagetable"
)

// assembleRow builds the record at rowIdx by reading the same data-row
// position from each slot's table. Slots beyond the available tables, rows
// the slot's table is too short for, and unresolvable columns all yield the
// absent value. It returns the names of required fields that came back
// absent; a non-empty list invalidates the row.
func assembleRow(sch *Schema, tables []pagetable.Table, rowIdx int) (*Record, []string) {
	rec := NewRecord(sch.FieldNames())
	var missing []string

	for _, f := range sch.Fields {
		if f.Hidden {
			rec.Hide(f.Name)
		}
		raw, ok := cellAt(f, tables, rowIdx)
		if !ok {
			if f.Required {
				missing = append(missing, f.Name)
			}
			continue
		}
		if f.Name == sch.PrimaryKey {
			rec.pkRaw = raw
		}
		// Without an explicit parser a cell is trimmed text, absent
		// when blank.
		var v Value
		if f.Parse != nil {
			v = f.Parse(raw)
		} else if t := strings.TrimSpace(raw); t != "" {
			v = TextValue(t)
		}
		if v.IsAbsent() && f.Required {
			missing = append(missing, f.Name)
		}
		rec.Set(f.Name, v)
	}

	return rec, missing
}

// cellAt fetches the raw cell for field f at data-row rowIdx.
func cellAt(f FieldSpec, tables []pagetable.Table, rowIdx int) (string, bool) {
	if f.Slot >= len(tables) {
		return "", false
	}
	tbl := tables[f.Slot]
	rows := tbl.DataRows()
	if rowIdx >= len(rows) {
		return "", false
	}
	return resolveCell(f, tbl, rows[rowIdx])
}

// maxDataRows returns the largest data-row count across the cycle's tables.
// Rows are aligned positionally, so the widest slot decides how many rows
// the cycle yields.
func maxDataRows(tables []pagetable.Table) int {
	max := 0
	for _, t := range tables {
		if n := len(t.DataRows()); n > max {
			max = n
		}
	}
	return max
}
