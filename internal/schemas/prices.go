package schemas

import "github.com/archibald-tools/archex/internal/engine"

// Prices use a compact 3-page cycle. Price cells stay verbatim in the
// exporter's locale.
func pricesSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "prices",
		PrimaryKey:   "product_id",
		AnchorLabel:  "ID",
		DefaultCycle: 3,
		Fields: []engine.FieldSpec{
			// Page 1: identification
			{Name: "product_id", Slot: 0, Label: "ID", Required: true},
			{Name: "item_selection", Slot: 0, Label: "ITEM SELECTION"},
			{Name: "account_code", Slot: 0, Label: "CODICE CONTO"},
			{Name: "account_description", Slot: 0, Label: "ACCOUNT: DESCRIZIONE"},
			// Page 2: description and validity
			{Name: "product_name", Slot: 1, Label: "ITEM DESCRIPTION"},
			{Name: "price_valid_from", Slot: 1, Label: "DA DATA"},
			// "DATA" as a label would match the DA DATA header first,
			// so the end-of-validity column resolves by position.
			{Name: "price_valid_to", Slot: 1, Match: engine.MatchIndex, Column: 2},
			{Name: "quantity_from", Slot: 1, Label: "QUANTITÀ"},
			// Page 3: amounts
			{Name: "unit_price", Slot: 2, Label: "IMPORTO UNITARIO"},
			{Name: "currency", Slot: 2, Label: "VALUTA"},
			{Name: "price_unit", Slot: 2, Label: "UNITÀ DI PREZZO"},
			{Name: "net_price_brasseler", Slot: 2, Label: "PREZZO NETTO BRASSELER"},
		},
	}
}
