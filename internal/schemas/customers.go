package schemas

import "github.com/archibald-tools/archex/internal/engine"

// Customers use a 4-page cycle. Header cells on these pages are frequently
// mangled by the exporter, so every column resolves by fixed position.
func customersSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "customers",
		PrimaryKey:   "customer_profile",
		AnchorLabel:  "ID PROFILO CLIENTE",
		DefaultCycle: 4,
		Fields: []engine.FieldSpec{
			// Page 1: identity
			{Name: "customer_profile", Slot: 0, Match: engine.MatchIndex, Column: 0, Required: true},
			{Name: "name", Slot: 0, Match: engine.MatchIndex, Column: 1},
			{Name: "vat_number", Slot: 0, Match: engine.MatchIndex, Column: 2},
			// Page 2: fiscal
			{Name: "pec", Slot: 1, Match: engine.MatchIndex, Column: 0},
			{Name: "sdi", Slot: 1, Match: engine.MatchIndex, Column: 1},
			{Name: "fiscal_code", Slot: 1, Match: engine.MatchIndex, Column: 2},
			{Name: "delivery_terms", Slot: 1, Match: engine.MatchIndex, Column: 3},
			// Page 3: address
			{Name: "street", Slot: 2, Match: engine.MatchIndex, Column: 0, Parse: collapsedTextParser},
			{Name: "logistics_address", Slot: 2, Match: engine.MatchIndex, Column: 1, Parse: collapsedTextParser},
			{Name: "postal_code", Slot: 2, Match: engine.MatchIndex, Column: 2},
			{Name: "city", Slot: 2, Match: engine.MatchIndex, Column: 3},
			// Page 4: contact
			{Name: "phone", Slot: 3, Match: engine.MatchIndex, Column: 0},
			{Name: "mobile", Slot: 3, Match: engine.MatchIndex, Column: 1},
			{Name: "url", Slot: 3, Match: engine.MatchIndex, Column: 2},
			{Name: "attention_to", Slot: 3, Match: engine.MatchIndex, Column: 3},
			{Name: "last_order_date", Slot: 3, Match: engine.MatchIndex, Column: 4, Parse: dateParser},
		},
	}
}
