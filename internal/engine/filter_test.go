package engine

import "testing"

func TestFilterKeep(t *testing.T) {
	f := DefaultFilter()

	tests := []struct {
		name string
		pk   Value
		raw  string
		want bool
	}{
		{"real id", TextValue("70.962"), "70.962", true},
		{"absent pk", Absent(), "", false},
		{"sentinel zero", TextValue("0"), "0", false},
		{"sentinel zero with whitespace", TextValue("0"), "  0  ", false},
		{"zero prefix is not sentinel", TextValue("012345"), "012345", true},
		{"footer totals row", TextValue("Count=11 Sum=52,00"), "Count=11 Sum=52,00", false},
		{"count inside text is kept", TextValue("Recount=1"), "Recount=1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Keep(tt.pk, tt.raw); got != tt.want {
				t.Errorf("Keep(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFilterCustomMarkers(t *testing.T) {
	f := Filter{Sentinels: []string{"N/A"}, FooterPrefixes: []string{"Totale"}}
	if f.Keep(TextValue("N/A"), "N/A") {
		t.Error("custom sentinel should be dropped")
	}
	if f.Keep(TextValue("Totale: 52,00"), "Totale: 52,00") {
		t.Error("custom footer prefix should be dropped")
	}
	if !f.Keep(TextValue("0"), "0") {
		t.Error("default sentinel does not apply to custom filter")
	}
}
