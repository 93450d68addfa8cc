package schemas

import (
	"strings"

	"github.com/archibald-tools/archex/internal/engine"
)

// Line items come from single-order exports with a 2-page cycle and no
// recurring anchor beyond the LINEA header. Quantities and amounts parse
// to numbers here; the description cell repeats the article code, which
// the finalizer strips.
func lineItemsSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "line-items",
		PrimaryKey:   "article_code",
		AnchorLabel:  "LINEA",
		DefaultCycle: 2,
		Valid:        lineItemInRange,
		Finalize:     cleanLineItem,
		Fields: []engine.FieldSpec{
			// Page 1: line, article, quantity, price, discounts. The
			// SCONTO % column is always zero in the export; the applied
			// discount lives in APPLICA SCONTO % at column 5.
			{Name: "line_number", Slot: 0, Match: engine.MatchIndex, Column: 0},
			{Name: "article_code", Slot: 0, Match: engine.MatchIndex, Column: 1, Required: true},
			{Name: "quantity", Slot: 0, Match: engine.MatchIndex, Column: 2, Parse: decimalParser, Required: true},
			{Name: "unit_price", Slot: 0, Match: engine.MatchIndex, Column: 3, Parse: decimalParser, Required: true},
			{Name: "discount_percent", Slot: 0, Match: engine.MatchIndex, Column: 5, Parse: decimalParser},
			// Page 2: amount and description (column 1 is a net price
			// duplicate)
			{Name: "line_amount", Slot: 1, Match: engine.MatchIndex, Column: 0, Parse: decimalParser},
			{Name: "description", Slot: 1, Match: engine.MatchIndex, Column: 2, Parse: collapsedTextParser},
		},
	}
}

// lineItemInRange rejects lines the export could not have produced
// legitimately: zero or negative quantities and negative prices.
func lineItemInRange(rec *engine.Record) bool {
	return rec.Get("quantity").Decimal() > 0 && rec.Get("unit_price").Decimal() >= 0
}

// cleanLineItem strips the repeated article code from the description,
// clamps the discount into 0-100, and computes the line amount when the
// export left it blank.
func cleanLineItem(rec *engine.Record) {
	code := rec.Get("article_code").Text()
	if desc := rec.Get("description"); !desc.IsAbsent() && code != "" {
		if trimmed := strings.TrimSpace(strings.TrimPrefix(desc.Text(), code)); trimmed != desc.Text() {
			if trimmed == "" {
				rec.Set("description", engine.Absent())
			} else {
				rec.Set("description", engine.TextValue(trimmed))
			}
		}
	}

	if disc := rec.Get("discount_percent"); !disc.IsAbsent() {
		d := disc.Decimal()
		switch {
		case d < 0:
			rec.Set("discount_percent", engine.DecimalValue(0))
		case d > 100:
			rec.Set("discount_percent", engine.DecimalValue(100))
		}
	} else {
		rec.Set("discount_percent", engine.DecimalValue(0))
	}

	if rec.Get("line_amount").IsAbsent() {
		qty := rec.Get("quantity").Decimal()
		price := rec.Get("unit_price").Decimal()
		disc := rec.Get("discount_percent").Decimal()
		rec.Set("line_amount", engine.DecimalValue(qty*price*(1-disc/100)))
	}
}
