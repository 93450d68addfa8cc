package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeOverrideFile(t, `
products:
  cycle_size: 9
orders:
  anchor_label: "ID ORDINE"
`)
	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	sch, err := Get("products", Options{})
	require.NoError(t, err)
	overrides["products"].Apply(sch)
	assert.Equal(t, 9, sch.DefaultCycle)
	assert.Equal(t, "ID ARTICOLO", sch.AnchorLabel, "unset override keys must not clobber")

	sch, err = Get("orders", Options{})
	require.NoError(t, err)
	overrides["orders"].Apply(sch)
	assert.Equal(t, 7, sch.DefaultCycle)
	assert.Equal(t, "ID ORDINE", sch.AnchorLabel)
}

func TestLoadOverridesRejectsUnknownType(t *testing.T) {
	path := writeOverrideFile(t, "receipts:\n  cycle_size: 4\n")
	_, err := LoadOverrides(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document type")
}

func TestLoadOverridesRejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero cycle size", "orders:\n  cycle_size: 0\n"},
		{"string cycle size", "orders:\n  cycle_size: sette\n"},
		{"unknown key", "orders:\n  pages: 7\n"},
		{"empty anchor", "orders:\n  anchor_label: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOverrideFile(t, tt.content)
			_, err := LoadOverrides(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
