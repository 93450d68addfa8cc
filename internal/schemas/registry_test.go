package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	want := []string{
		"customers", "delivery-notes", "invoices",
		"line-items", "orders", "prices", "products",
	}
	assert.Equal(t, want, Names())
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("receipts", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document type")
}

func TestGetReturnsFreshCopies(t *testing.T) {
	a, err := Get("orders", Options{})
	require.NoError(t, err)
	b, err := Get("orders", Options{})
	require.NoError(t, err)

	a.DefaultCycle = 99
	assert.Equal(t, 7, b.DefaultCycle, "layouts must not share state across lookups")
}

func TestLayoutShapes(t *testing.T) {
	tests := []struct {
		name   string
		cycle  int
		anchor string
		pk     string
		fields int
	}{
		{"orders", 7, "ID", "id", 20},
		{"customers", 4, "ID PROFILO CLIENTE", "customer_profile", 16},
		{"delivery-notes", 6, "PDF DDT", "id", 13},
		{"invoices", 7, "FATTURA PDF", "id", 23},
		{"products", 8, "ID ARTICOLO", "id_articolo", 33},
		{"prices", 3, "ID", "product_id", 12},
		{"line-items", 2, "LINEA", "article_code", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch, err := Get(tt.name, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.cycle, sch.DefaultCycle)
			assert.Equal(t, tt.anchor, sch.AnchorLabel)
			assert.Equal(t, tt.pk, sch.PrimaryKey)
			assert.Len(t, sch.OutputFieldNames(), tt.fields)

			// The primary key must be an actual field.
			assert.Contains(t, sch.FieldNames(), sch.PrimaryKey)
			// Slots must fit inside the cycle.
			assert.LessOrEqual(t, sch.SlotCount(), sch.DefaultCycle)
		})
	}
}
