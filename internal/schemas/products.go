package schemas

import "github.com/archibald-tools/archex/internal/engine"

// Products use the widest layout: an 8-page cycle resolved positionally.
// Two oddities from the export survive here: the image column on page 2
// holds a binary placeholder and is skipped, and the PACCO and GAMBA
// columns on page 4 are halves of one value.
func productsSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "products",
		PrimaryKey:   "id_articolo",
		AnchorLabel:  "ID ARTICOLO",
		DefaultCycle: 8,
		Finalize:     combinePaccoGamba,
		Fields: []engine.FieldSpec{
			// Page 1: identity
			{Name: "id_articolo", Slot: 0, Match: engine.MatchIndex, Column: 0, Required: true},
			{Name: "nome_articolo", Slot: 0, Match: engine.MatchIndex, Column: 1, Required: true},
			{Name: "descrizione", Slot: 0, Match: engine.MatchIndex, Column: 2},
			// Page 2: grouping (column 1 is the image placeholder)
			{Name: "gruppo_articolo", Slot: 1, Match: engine.MatchIndex, Column: 0},
			{Name: "contenuto_imballaggio", Slot: 1, Match: engine.MatchIndex, Column: 2},
			{Name: "nome_ricerca", Slot: 1, Match: engine.MatchIndex, Column: 3},
			// Page 3: pricing group
			{Name: "unita_prezzo", Slot: 2, Match: engine.MatchIndex, Column: 0},
			{Name: "id_gruppo_prodotti", Slot: 2, Match: engine.MatchIndex, Column: 1},
			{Name: "descrizione_gruppo_articolo", Slot: 2, Match: engine.MatchIndex, Column: 2},
			{Name: "qta_minima", Slot: 2, Match: engine.MatchIndex, Column: 3},
			// Page 4: quantities and packaging
			{Name: "qta_multipli", Slot: 3, Match: engine.MatchIndex, Column: 0},
			{Name: "qta_massima", Slot: 3, Match: engine.MatchIndex, Column: 1},
			{Name: "figura", Slot: 3, Match: engine.MatchIndex, Column: 2},
			{Name: "id_blocco_articolo", Slot: 3, Match: engine.MatchIndex, Column: 3},
			{Name: "pacco", Slot: 3, Match: engine.MatchIndex, Column: 4, Hidden: true},
			{Name: "gamba", Slot: 3, Match: engine.MatchIndex, Column: 5, Hidden: true},
			{Name: "pacco_gamba", Slot: 3, Match: engine.MatchIndex, Column: 4},
			// Page 5: configuration and audit
			{Name: "grandezza", Slot: 4, Match: engine.MatchIndex, Column: 0},
			{Name: "id_configurazione", Slot: 4, Match: engine.MatchIndex, Column: 1},
			{Name: "creato_da", Slot: 4, Match: engine.MatchIndex, Column: 2},
			{Name: "data_creata", Slot: 4, Match: engine.MatchIndex, Column: 3},
			{Name: "dataareaid", Slot: 4, Match: engine.MatchIndex, Column: 4},
			// Page 6: defaults and discounts
			{Name: "qta_predefinita", Slot: 5, Match: engine.MatchIndex, Column: 0},
			{Name: "visualizza_numero_prodotto", Slot: 5, Match: engine.MatchIndex, Column: 1},
			{Name: "sconto_assoluto_totale", Slot: 5, Match: engine.MatchIndex, Column: 2},
			{Name: "id_prodotto", Slot: 5, Match: engine.MatchIndex, Column: 3},
			// Page 7: line discount and modification audit
			{Name: "sconto_linea", Slot: 6, Match: engine.MatchIndex, Column: 0},
			{Name: "modificato_da", Slot: 6, Match: engine.MatchIndex, Column: 1},
			{Name: "datetime_modificato", Slot: 6, Match: engine.MatchIndex, Column: 2},
			{Name: "articolo_ordinabile", Slot: 6, Match: engine.MatchIndex, Column: 3},
			// Page 8: purchasing
			{Name: "purch_price", Slot: 7, Match: engine.MatchIndex, Column: 0},
			{Name: "pcs_id_configurazione_standard", Slot: 7, Match: engine.MatchIndex, Column: 1},
			{Name: "qta_standard", Slot: 7, Match: engine.MatchIndex, Column: 2},
			{Name: "fermato", Slot: 7, Match: engine.MatchIndex, Column: 3},
			{Name: "id_unita", Slot: 7, Match: engine.MatchIndex, Column: 4},
		},
	}
}

// combinePaccoGamba joins the two packaging half-columns into pacco_gamba.
func combinePaccoGamba(rec *engine.Record) {
	pacco := rec.Get("pacco").Text()
	gamba := rec.Get("gamba").Text()
	combined := pacco + gamba
	if combined == "" {
		rec.Set("pacco_gamba", engine.Absent())
		return
	}
	rec.Set("pacco_gamba", engine.TextValue(combined))
}
