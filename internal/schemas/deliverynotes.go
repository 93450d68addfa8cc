package schemas

import (
	"github.com/archibald-tools/archex/internal/engine"
	"github.com/archibald-tools/archex/internal/tracking"
)

// Delivery notes use a 6-page cycle; the sixth page carries nothing this
// layout needs. Columns resolve positionally. The tracking cell on page 4
// expands into number, courier, and link.
func deliveryNotesSchema(tmpl tracking.Templates) *engine.Schema {
	return &engine.Schema{
		Name:         "delivery-notes",
		PrimaryKey:   "id",
		AnchorLabel:  "PDF DDT",
		DefaultCycle: 6,
		Fields: []engine.FieldSpec{
			// Page 1: identification. Column 0 is the export's own PDF
			// link cell and is skipped.
			{Name: "id", Slot: 0, Match: engine.MatchIndex, Column: 1, Required: true},
			{Name: "ddt_number", Slot: 0, Match: engine.MatchIndex, Column: 2, Required: true},
			{Name: "delivery_date", Slot: 0, Match: engine.MatchIndex, Column: 3, Parse: dateParser},
			{Name: "order_number", Slot: 0, Match: engine.MatchIndex, Column: 4, Required: true},
			// Page 2: customer
			{Name: "customer_account", Slot: 1, Match: engine.MatchIndex, Column: 0},
			{Name: "sales_name", Slot: 1, Match: engine.MatchIndex, Column: 1},
			// Page 3: delivery name
			{Name: "delivery_name", Slot: 2, Match: engine.MatchIndex, Column: 0},
			// Page 4: tracking
			{Name: "tracking_number", Slot: 3, Match: engine.MatchIndex, Column: 0, Parse: trackingNumberParser(tmpl)},
			{Name: "tracking_courier", Slot: 3, Match: engine.MatchIndex, Column: 0, Parse: trackingCourierParser(tmpl)},
			{Name: "tracking_url", Slot: 3, Match: engine.MatchIndex, Column: 0, Parse: trackingURLParser(tmpl)},
			{Name: "delivery_terms", Slot: 3, Match: engine.MatchIndex, Column: 1},
			{Name: "delivery_method", Slot: 3, Match: engine.MatchIndex, Column: 2},
			// Page 5: location
			{Name: "delivery_city", Slot: 4, Match: engine.MatchIndex, Column: 0},
		},
	}
}
