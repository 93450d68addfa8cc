package fieldparse

import (
	"testing"
	"time"
)

func TestText(t *testing.T) {
	if s, ok := Text("  ciao  "); !ok || s != "ciao" {
		t.Errorf("got %q ok=%v", s, ok)
	}
	if _, ok := Text("   "); ok {
		t.Error("blank input must be absent")
	}
}

func TestCollapsedText(t *testing.T) {
	in := "Via San Vito, 43\n80056  Ercolano"
	want := "Via San Vito, 43 80056 Ercolano"
	if s, ok := CollapsedText(in); !ok || s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{" 007 ", 7, true},
		{"", 0, false},
		{"12a", 0, false},
		{"-3", 0, false},
	}
	for _, tt := range tests {
		if got, ok := Integer(tt.in); got != tt.want || ok != tt.ok {
			t.Errorf("Integer(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"16,25 €", 16.25, true},
		{"1.234,56 €", 1234.56, true},
		{"12,64 %", 12.64, true},
		{"52,00", 52, true},
		{"105,60 €", 105.6, true},
		{"", 0, false},
		{"n.d.", 0, false},
	}
	for _, tt := range tests {
		got, ok := Decimal(tt.in)
		if ok != tt.ok {
			t.Errorf("Decimal(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Decimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	got, ok := Date("21/01/2026")
	if !ok {
		t.Fatal("expected ok")
	}
	if want := time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := Date("2026-01-21"); ok {
		t.Error("ISO input is not the export's format")
	}
	if _, ok := Date("31/02/2026"); ok {
		t.Error("impossible date must be absent")
	}
}

func TestDateTime(t *testing.T) {
	got, ok := DateTime("20/01/2026 12:04:22")
	if !ok {
		t.Fatal("expected ok")
	}
	if want := time.Date(2026, 1, 20, 12, 4, 22, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := DateTime("20/01/2026"); ok {
		t.Error("date without time must be absent")
	}
}
