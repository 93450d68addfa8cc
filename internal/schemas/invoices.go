package schemas

import "github.com/archibald-tools/archex/internal/engine"

// Invoices spread each record over a 7-page cycle with header rows on
// every page. The last page carries the order number that links the
// invoice back to its sales order.
func invoicesSchema() *engine.Schema {
	return &engine.Schema{
		Name:         "invoices",
		PrimaryKey:   "id",
		AnchorLabel:  "FATTURA PDF",
		DefaultCycle: 7,
		Fields: []engine.FieldSpec{
			// Page 1: identification. ID FATTURA doubles as the
			// human-facing invoice number.
			{Name: "id", Slot: 0, Label: "ID FATTURA", Required: true},
			{Name: "invoice_number", Slot: 0, Label: "ID FATTURA"},
			{Name: "invoice_date", Slot: 0, Label: "DATA FATTURA", Parse: dateParser},
			{Name: "customer_account", Slot: 0, Label: "CONTO FATTURE", Required: true},
			// Page 2: billing
			{Name: "billing_name", Slot: 1, Label: "NOME DI FATTURAZIONE"},
			{Name: "quantity", Slot: 1, Label: "QUANTITÀ"},
			{Name: "sales_balance", Slot: 1, Label: "SALDO VENDITE MST"},
			// Page 3: amounts, verbatim locale text
			{Name: "line_sum", Slot: 2, Label: "SOMMA LINEA"},
			{Name: "discount_amount", Slot: 2, Label: "SCONTO MST"},
			{Name: "tax_sum", Slot: 2, Label: "SOMMA FISCALE MST"},
			{Name: "invoice_amount", Slot: 2, Label: "IMPORTO FATTURA MST"},
			// Page 4: references
			{Name: "purchase_order", Slot: 3, Label: "ORDINE DI ACQUISTO"},
			{Name: "customer_reference", Slot: 3, Label: "RIFERIMENTO CLIENTE"},
			{Name: "due_date", Slot: 3, Label: "SCADENZA", Parse: dateParser},
			// Page 5: payment terms
			{Name: "payment_term_id", Slot: 4, Label: "ID TERMINE DI PAGAMENTO"},
			{Name: "days_past_due", Slot: 4, Label: "OLTRE I GIORNI DI SCADENZA"},
			// Page 6: settlement
			{Name: "settled", Slot: 5, Label: "LIQUIDA"},
			{Name: "amount", Slot: 5, Label: "IMPORTO MST"},
			{Name: "last_payment_id", Slot: 5, Label: "IDENTIFICATIVO ULTIMO PAGAMENTO"},
			{Name: "last_settlement_date", Slot: 5, Label: "DATA DI ULTIMA LIQUIDAZIONE", Parse: dateParser},
			// Page 7: closure and order link
			{Name: "closed", Slot: 6, Label: "CHIUSO"},
			{Name: "remaining_amount", Slot: 6, Label: "IMPORTO RIMANENTE MST"},
			{Name: "order_number", Slot: 6, Label: "ID VENDITE"},
		},
	}
}
