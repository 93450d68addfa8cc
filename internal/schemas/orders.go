package schemas

import "github.com/archibald-tools/archex/internal/engine"

// Orders spread each record over a 7-page cycle. Pages carry header rows,
// so columns resolve by header substring.
func ordersSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "orders",
		PrimaryKey:   "id",
		AnchorLabel:  "ID",
		DefaultCycle: 7,
		Fields: []engine.FieldSpec{
			// Page 1: identification
			{Name: "id", Slot: 0, Label: "ID", Required: true},
			{Name: "order_number", Slot: 0, Label: "ID DI VENDITA"},
			{Name: "customer_profile_id", Slot: 0, Label: "PROFILO CLIENTE"},
			{Name: "customer_name", Slot: 0, Label: "NOME VENDITE"},
			// Page 2: delivery
			{Name: "delivery_name", Slot: 1, Label: "NOME DI CONSEGNA"},
			{Name: "delivery_address", Slot: 1, Label: "INDIRIZZO DI CONSEGNA", Parse: collapsedTextParser},
			// Page 3: dates
			{Name: "creation_date", Slot: 2, Label: "DATA DI CREAZIONE", Parse: dateTimeParser, Required: true},
			{Name: "delivery_date", Slot: 2, Label: "DATA DI CONSEGNA", Parse: dateParser},
			{Name: "remaining_sales_financial", Slot: 2, Label: "RIMANI VENDITE FINANZIARIE"},
			// Page 4: status
			{Name: "customer_reference", Slot: 3, Label: "RIFERIMENTO CLIENTE"},
			{Name: "sales_status", Slot: 3, Label: "STATO DELLE VENDITE"},
			{Name: "order_type", Slot: 3, Label: "TIPO DI ORDINE"},
			{Name: "document_status", Slot: 3, Label: "STATO DEL DOCUMENTO"},
			// Page 5: transfer
			{Name: "sales_origin", Slot: 4, Label: "ORIGINE VENDITE"},
			{Name: "transfer_status", Slot: 4, Label: "STATO DEL TRASFERIMENTO"},
			{Name: "transfer_date", Slot: 4, Label: "DATA DI TRASFERIMENTO", Parse: dateParser},
			// Page 6: amounts. Monetary cells stay verbatim in the
			// exporter's locale; downstream reconciliation compares them
			// textually against the ERP.
			{Name: "completion_date", Slot: 5, Label: "DATA DI COMPLETAMENTO", Parse: dateParser},
			{Name: "discount_percent", Slot: 5, Label: "APPLICA SCONTO"},
			{Name: "gross_amount", Slot: 5, Label: "IMPORTO LORDO"},
			// Page 7: total
			{Name: "total_amount", Slot: 6, Label: "IMPORTO TOTALE"},
		},
	}
}
